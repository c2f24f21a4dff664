// Manual smoke test for the oracle client against a local backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/KazKozDev/pathfinder/internal/config"
	"github.com/KazKozDev/pathfinder/pkg/oracle"
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:11434", "Oracle base URL")
		model   = flag.String("model", "", "Model name (empty for the configured default)")
		prompt  = flag.String("prompt", "Suggest three questions to ask at the end of a job interview", "Prompt to send")
	)
	flag.Parse()

	cfg := config.DefaultOracleConfig()
	cfg.BaseURL = *baseURL
	if *model != "" {
		cfg.Model = *model
	}

	client, err := oracle.NewDefaultClient(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	out, err := client.Generate(context.Background(), "", *prompt)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
}
