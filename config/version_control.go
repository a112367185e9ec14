package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executable
	MainVersion = "v1.2.0"

	// Modules
	MotifCatalog    = "v1.0.0"
	Composition     = "v1.1.0"
	ReportModel     = "v1.1.0"
	FastaLoader     = "v1.0.1"
	XLSXWriter      = "v1.1.0"
	CSVWriter       = "v1.0.0"
	CompositionPlot = "v0.2.0"
	Benchmark       = "v1.0.1"
)

// Component is a named module version
type Component struct {
	Name    string
	Version string
}

// Components lists the module versions in menu order
func Components() []Component {
	return []Component{
		{"Motif Catalog", MotifCatalog},
		{"Composition Analyzer", Composition},
		{"Report Model", ReportModel},
		{"FASTA Loader", FastaLoader},
		{"XLSX Writer", XLSXWriter},
		{"CSV Writer", CSVWriter},
		{"Composition Plots", CompositionPlot},
		{"Benchmark", Benchmark},
	}
}
