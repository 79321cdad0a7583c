package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/CodeSmile-0000011110110111/de.codesmile.testtools/engine"
	"github.com/CodeSmile-0000011110110111/de.codesmile.testtools/engine/enginetest"
	"github.com/CodeSmile-0000011110110111/de.codesmile.testtools/fixture"
	"github.com/CodeSmile-0000011110110111/de.codesmile.testtools/internal/config"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Smoke-run every fixture against the in-memory engine",
	Long: `Verify exercises all three fixture helpers against the bundled
in-memory engine: an empty scene, a default-object scene persisted through
the asset database, and a test object with components. Use it as an
install smoke check.

Configuration comes from testtools.yaml in the working directory and
TESTTOOLS_* environment variables.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetLevel(cfg.Level())
	logger.SetOutput(cmd.ErrOrStderr())

	assetDir := cfg.AssetDir
	if assetDir == "" {
		assetDir, err = os.MkdirTemp("", "testtools-verify-")
		if err != nil {
			return fmt.Errorf("failed to create scratch asset dir: %w", err)
		}
		defer os.RemoveAll(assetDir)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	eng := enginetest.New(assetDir)
	return verifyAll(ctx, eng, cfg.ScenePath, logger, cmd.OutOrStdout())
}

type verifyCheck struct {
	name     string
	fixtures []fixture.Fixture
	body     func() error
}

// verifyAll runs one check per fixture helper and reports each result.
func verifyAll(ctx context.Context, eng *enginetest.Engine, scenePath string, logger logrus.FieldLogger, out io.Writer) error {
	runner := fixture.NewRunner(fixture.WithLogger(logger))

	persisted := fixture.NewScene(eng, eng, engine.SetupDefaultObjects,
		fixture.WithScenePath(scenePath), fixture.WithLogger(logger))

	checks := []verifyCheck{
		{
			name: "empty scene",
			fixtures: []fixture.Fixture{
				fixture.NewScene(eng, eng, engine.SetupEmpty, fixture.WithLogger(logger)),
			},
			body: func() error {
				if n := len(eng.ActiveScene().RootObjects()); n != 0 {
					return fmt.Errorf("expected empty scene, found %d objects", n)
				}
				return nil
			},
		},
		{
			name:     "persisted default scene",
			fixtures: []fixture.Fixture{persisted},
			body: func() error {
				sf, err := enginetest.ReadSceneFile(eng.AssetPath(persisted.Path()))
				if err != nil {
					return err
				}
				if len(sf.Objects) != 2 {
					return fmt.Errorf("saved scene has %d objects, want 2", len(sf.Objects))
				}
				return nil
			},
		},
		{
			name: "test object",
			fixtures: []fixture.Fixture{
				fixture.NewGameObject(eng,
					fixture.WithComponents("Transform", "Camera"),
					fixture.WithLogger(logger)),
			},
			body: func() error {
				for _, obj := range eng.ActiveScene().RootObjects() {
					if obj.Name() == fixture.DefaultGameObjectName {
						return nil
					}
				}
				return fmt.Errorf("%q not found in active scene", fixture.DefaultGameObjectName)
			},
		},
	}

	failed := 0
	for _, check := range checks {
		err := runner.Run(ctx, fixture.Identity{Name: "verify/" + check.name},
			check.body, check.fixtures...)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", check.name, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", check.name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	fmt.Fprintf(out, "all %d checks passed\n", len(checks))
	return nil
}
