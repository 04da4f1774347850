package source

import (
	"context"
	"os"
	"testing"
	"time"
)

func Test_StevenBlackReachable(t *testing.T) {
	if os.Getenv("HOSTS_INTEGRATION") != "1" {
		t.Skip("integration test is disabled, set HOSTS_INTEGRATION=1 to run")
	}

	url := os.Getenv("HOSTS_INTEGRATION_URL")
	if url == "" {
		url = "https://raw.githubusercontent.com/StevenBlack/hosts/master/hosts"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lines, err := NewClient(DefaultTimeout).Fetch(ctx, url)
	if err != nil {
		t.Fatalf("failed to fetch %s: %v", url, err)
	}

	if len(lines) == 0 {
		t.Logf("warning: fetched 0 lines from %s; maybe list is empty or moved", url)
	}
}
