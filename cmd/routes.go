package main

import (
	"fmt"

	httpapi "github.com/jekabolt/stockroom/internal/api/http"
	"github.com/jekabolt/stockroom/internal/apisrv/inventory"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the HTTP routing tree as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(httpapi.RoutesDoc(inventory.New(nil, nil)))
	},
}
