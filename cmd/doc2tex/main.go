package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "doc2tex",
		Short: "Convert documents into publication-ready LaTeX",
	}

	root.AddCommand(convertCmd())
	root.AddCommand(templatesCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
