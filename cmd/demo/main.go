// Command demo issues one structured-output chat request: it derives a
// strict JSON Schema from the Person type, asks the completion service for
// Barack Obama's basic information constrained to that schema, and prints
// the completion to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/kressley/outform"
	"github.com/kressley/outform/client"
)

// Person is the record the completion is constrained to.
type Person struct {
	// FullName is the person's full legal name.
	FullName string `json:"full_name"`
	// DateOfBirth is the date of birth in YYYY-MM-DD format.
	DateOfBirth string `json:"date_of_birth"`
}

func main() {
	// .env values override the process environment, matching dotenv
	// override semantics.
	godotenv.Overload()

	cfg := client.ConfigFromEnv()
	if cfg.APIKey == "" {
		fmt.Fprintln(os.Stderr, "OPENAI_API_KEY is not set")
		os.Exit(1)
	}

	personSchema := outform.ResponseSchema{
		Schema: outform.SchemaFrom[Person]().
			Desc("full_name", "The full name of the person.").
			Desc("date_of_birth", "The date of birth in YYYY-MM-DD format.").
			Build(),
	}

	messages := []outform.Message{
		{
			Role: outform.RoleUser,
			Parts: []outform.ContentPart{
				outform.NewTextPart("What is Barack Obama basic information?"),
			},
		},
		{
			Role: outform.RoleAssistant,
			Parts: []outform.ContentPart{
				outform.NewTextPart("{\n  \"full_name\": \"Barack Hussein Obama II\",\n  \"date_of_birth\": \"1961-08-04\"\n}"),
			},
		},
	}

	c := client.New(cfg)
	resp, err := c.Chat(context.Background(), messages,
		outform.WithResponseSchema(personSchema),
		outform.WithTemperature(1),
		outform.WithTopP(1),
		outform.WithFrequencyPenalty(0),
		outform.WithPresencePenalty(0),
		outform.WithMaxCompletionTokens(2048),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chat request failed: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode response: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
