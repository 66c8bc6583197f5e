package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	types "github.com/sigc-piloto/sigc-backend/internal/domain"
	"github.com/sigc-piloto/sigc-backend/internal/platform/dbctx"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load catalog institutions from a YAML file",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML file with an 'universidades' list")
	_ = seedCmd.MarkFlagRequired("file")
}

type seedDocument struct {
	Universidades []seedInstitution `yaml:"universidades"`
}

type seedInstitution struct {
	Siglas        string `yaml:"siglas"`
	NombreOficial string `yaml:"nombre_oficial"`
	Ciudad        string `yaml:"ciudad"`
	Activa        *bool  `yaml:"activa"`
}

// parseSeed decodes and validates a catalog seed document. Entries default to
// active; duplicate siglas are rejected.
func parseSeed(r io.Reader) ([]*types.Institution, error) {
	var doc seedDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("seed file is empty")
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Universidades))
	out := make([]*types.Institution, 0, len(doc.Universidades))
	for i, u := range doc.Universidades {
		siglas := strings.TrimSpace(u.Siglas)
		if siglas == "" {
			return nil, fmt.Errorf("universidades[%d]: siglas is required", i)
		}
		if strings.TrimSpace(u.NombreOficial) == "" {
			return nil, fmt.Errorf("universidades[%d] (%s): nombre_oficial is required", i, siglas)
		}
		if _, dup := seen[siglas]; dup {
			return nil, fmt.Errorf("universidades[%d]: duplicate siglas %q", i, siglas)
		}
		seen[siglas] = struct{}{}

		activa := true
		if u.Activa != nil {
			activa = *u.Activa
		}
		out = append(out, &types.Institution{
			Siglas:        siglas,
			NombreOficial: strings.TrimSpace(u.NombreOficial),
			Ciudad:        strings.TrimSpace(u.Ciudad),
			Activa:        activa,
		})
	}
	return out, nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	f, err := os.Open(seedFile)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := parseSeed(f)
	if err != nil {
		return err
	}

	a, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	saved, err := a.Repos.Institution.Upsert(dbctx.New(cmd.Context()), rows)
	if err != nil {
		return fmt.Errorf("upsert institutions: %w", err)
	}
	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Seeded %d institutions from %s\n", len(saved), seedFile)
	return nil
}
