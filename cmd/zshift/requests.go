package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/zshift/config"
	"github.com/katalvlaran/zshift/shift"
)

var errNoFiles = errors.New("zshift: at least one --file is required")

// loadRequests loads every request file in flag order.
func loadRequests(paths []string) ([]*config.File, []shift.Request, error) {
	if len(paths) == 0 {
		return nil, nil, errNoFiles
	}
	docs := make([]*config.File, 0, len(paths))
	reqs := make([]shift.Request, 0, len(paths))
	for _, p := range paths {
		f, err := config.Load(p)
		if err != nil {
			return nil, nil, err
		}
		req, err := f.Request()
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", p, err)
		}
		docs = append(docs, f)
		reqs = append(reqs, req)
	}

	return docs, reqs, nil
}
