// Command schema-generator writes the JSON schema of svcman.yml for editors
// and CI checks.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/svcman/config"
)

func main() {
	out := flag.String("out", "schema/svcman.schema.json", "Output path")
	flag.Parse()

	log := logrus.New()

	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatalf("Error creating schema directory: %v", err)
	}
	if err := os.WriteFile(*out, append(schemaBytes, '\n'), 0o644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.WithField("path", *out).Info("Generated schema")
}
