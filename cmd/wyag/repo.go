package main

import (
	"os"

	"github.com/spindlymist/wyag-go"
)

func findRepo() (*wyag.Repository, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return wyag.Find(dir)
}
