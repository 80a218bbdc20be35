package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/thenoetrevino/circleback/internal/app"
	"github.com/thenoetrevino/circleback/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the app was injected through the context
	owned bool
}

// NewCLI loads the user's config and builds the application container
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	return &CLI{
		App:   application,
		owned: true,
	}, nil
}

// LoadDataset ingests the --file input. An empty file flag, or a file with
// no content, loads the default dataset unless one is already held.
func (c *CLI) LoadDataset(ctx context.Context, file string, stdin io.Reader) error {
	svc := c.App.TrackerService

	if file != "" {
		name, text, err := ReadInput(file, stdin)
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) != "" {
			_, err = svc.Upload(ctx, name, text)
			return err
		}
	} else if !c.App.Store.Peek().Empty() {
		return nil
	}

	_, err := svc.LoadDefault(ctx)
	return err
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
