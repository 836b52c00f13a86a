// Package buildinfo exposes build metadata injected with -ldflags:
//
//	go build -ldflags "-X github.com/UhCardoso/travel-manager-front/internal/buildinfo.buildVersion=v1.0.0 \
//	  -X github.com/UhCardoso/travel-manager-front/internal/buildinfo.buildDate=$(date +%F) \
//	  -X github.com/UhCardoso/travel-manager-front/internal/buildinfo.buildCommit=$(git rev-parse --short HEAD)" ./cmd/client
package buildinfo

import (
	"fmt"
	"io"
)

const notAvailable = "N/A"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func Version() string { return orNA(buildVersion) }

// PrintBuildData writes version, date and commit to w, one per line.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(buildVersion))
	fmt.Fprintf(w, "Build date: %s\n", orNA(buildDate))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(buildCommit))
}
