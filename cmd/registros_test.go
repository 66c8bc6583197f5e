package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/sigc-piloto/sigc-backend/internal/domain/registro"
	"github.com/sigc-piloto/sigc-backend/internal/services"
)

func TestRenderRegistros(t *testing.T) {
	color.NoColor = true
	fecha, err := registro.ParseFecha("2024-06-30")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	renderRegistros(&buf, []services.RegistroSummary{
		{ReiID: 2, UniversidadSiglas: "UTEC", UniversidadNombre: "Universidad de Ingenieria", Anio: 2024, FechaCorte: &fecha},
		{ReiID: 1, UniversidadSiglas: "PUCP", UniversidadNombre: "Pontificia", Anio: 2023},
	})
	out := buf.String()
	for _, want := range []string{"2 registros", "UTEC", "2024-06-30", "PUCP", "2023"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "UTEC") > strings.Index(out, "PUCP") {
		t.Fatalf("rows reordered:\n%s", out)
	}
}
