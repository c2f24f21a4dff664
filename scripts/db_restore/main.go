package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/KazKozDev/pathfinder/internal/config"
)

func main() {
	var from = flag.String("from", "", "Backup file to restore (default: newest <database>.*.bak)")
	flag.Parse()

	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	src := *from
	if src == "" {
		matches, err := filepath.Glob(cfg.DatabasePath + ".*.bak")
		if err != nil || len(matches) == 0 {
			fmt.Fprintf(os.Stderr, "Restore error: no backups found for %s\n", cfg.DatabasePath)
			os.Exit(1)
		}
		sort.Strings(matches)
		src = matches[len(matches)-1]
	}
	dst := cfg.DatabasePath

	srcFile, err := os.Open(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
		os.Exit(1)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
		os.Exit(1)
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Database restored from %s\n", src)
}
