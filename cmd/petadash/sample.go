package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// sampleCSV is a ready-to-edit data file covering a handful of kecamatan.
const sampleCSV = `kecamatan,potensi,realisasi
Citeureup,33537,26829
Babakan Madang,18105,14484
Sukamakmur,13622,10897
Caringin,20863,16690
Cijeruk,14656,11724
Cibinong,25000,20000
`

// sampleCmd writes an example CSV so users can try the dashboard without
// their own data.
var sampleCmd = &cobra.Command{
	Use:   "sample [path]",
	Short: "Write an example CSV data file",
	Long: `Write an example potensi/realisasi CSV to the given path (default
contoh_data.csv). Edit it or replace it with your own export, then run
'petadash render --data contoh_data.csv'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "contoh_data.csv"
		if len(args) > 0 {
			path = args[0]
		}
		if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil { //nolint:gosec // sample data
			return &exitCodeError{code: ExitInvalidArgs, msg: fmt.Sprintf("write sample: %v", err)}
		}
		cmd.Printf("wrote %s\n", path)
		return nil
	},
}
