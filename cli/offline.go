package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Maxwell1111/Lego-Interligence/ldraw"
	"github.com/Maxwell1111/Lego-Interligence/model"
	"github.com/Maxwell1111/Lego-Interligence/validate"
)

// loadBuildFile reads a build snapshot from a JSON file, so validation and
// export can run without a database.
func loadBuildFile(path string) (*model.BuildState, error) {
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, fmt.Errorf("unable to read %s: %s", path, readErr.Error())
	}

	build := &model.BuildState{}
	if unmarshalErr := json.Unmarshal(content, build); unmarshalErr != nil {
		return nil, fmt.Errorf("unable to parse %s: %s", path, unmarshalErr.Error())
	}
	return build, nil
}

var cmdValidate = &cobra.Command{
	Use:   "validate [build.json]",
	Short: "validate a build snapshot from a file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		build, loadErr := loadBuildFile(args[0])
		if loadErr != nil {
			log.Fatal(loadErr.Error())
		}

		result := validate.NewPhysicalValidator().ValidateBuild(build)
		for _, message := range result.Errors {
			fmt.Printf("error: %s\n", message)
		}
		for _, message := range result.Warnings {
			fmt.Printf("warning: %s\n", message)
		}
		for _, message := range result.Suggestions {
			fmt.Printf("suggestion: %s\n", message)
		}

		if !result.IsValid() {
			log.Fatalf("%s failed validation", build.Name)
		}
		log.Infof("%s is physically valid", build.Name)
	},
}

var exportOutputPath string

var cmdExport = &cobra.Command{
	Use:   "export [build.json]",
	Short: "export a build snapshot to an LDraw file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		build, loadErr := loadBuildFile(args[0])
		if loadErr != nil {
			log.Fatal(loadErr.Error())
		}

		outputPath := exportOutputPath
		if outputPath == "" {
			outputPath = ldraw.Filename(build)
		}

		if writeErr := os.WriteFile(outputPath, []byte(ldraw.Export(build)), 0644); writeErr != nil {
			log.Fatal(writeErr.Error())
		}
		log.Infof("Exported %d parts to %s", len(build.Parts), outputPath)
	},
}

func init() {
	cmdExport.Flags().StringVarP(
		&exportOutputPath, "output", "o", "", "output file path",
	)
}
