package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/sigc-piloto/sigc-backend/internal/services"
)

var (
	listSiglas string
	listAnio   int
)

var registrosCmd = &cobra.Command{
	Use:   "registros",
	Short: "Print registered records, newest first",
	RunE:  runRegistros,
}

func init() {
	registrosCmd.Flags().StringVar(&listSiglas, "siglas", "", "filter by institution code")
	registrosCmd.Flags().IntVar(&listAnio, "anio", 0, "filter by reporting year")
}

func runRegistros(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	filter := services.RegistroFilter{Siglas: listSiglas}
	if cmd.Flags().Changed("anio") {
		anio := listAnio
		filter.Anio = &anio
	}
	rows, err := a.Services.Registro.List(cmd.Context(), filter)
	if err != nil {
		return err
	}
	renderRegistros(cmd.OutOrStdout(), rows)
	return nil
}

func renderRegistros(w io.Writer, rows []services.RegistroSummary) {
	color.New(color.FgYellow).Fprintf(w, "\n%d registros\n", len(rows))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"rei_id", "Siglas", "Universidad", "Anio", "Fecha corte"})
	for _, r := range rows {
		fecha := "-"
		if r.FechaCorte != nil {
			fecha = r.FechaCorte.String()
		}
		table.Append([]string{
			strconv.FormatInt(r.ReiID, 10),
			r.UniversidadSiglas,
			r.UniversidadNombre,
			fmt.Sprint(r.Anio),
			fecha,
		})
	}
	table.Render()
}
