package main

import (
	"context"
	"log"
	"portfoliolab/cmd"
	"portfoliolab/internal"
	"strings"

	"github.com/spf13/cobra"

	_ "github.com/lib/pq"
)

// ops tool for poking at the running stack without a frontend

func main() {
	root := &cobra.Command{
		Use:   "portfoliolab",
		Short: "portfoliolab ops commands",
	}

	var port int
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "run the api server",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)
			return handler.StartApi(port)
		},
	}
	serveCmd.Flags().IntVar(&port, "port", 3009, "port to listen on")

	quoteCmd := &cobra.Command{
		Use:   "quote [symbol]",
		Short: "look up a quote for a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			q, err := handler.QuoteRepository.Get(args[0])
			if err != nil {
				return err
			}
			internal.Pprint(q)
			return nil
		},
	}

	suggestCmd := &cobra.Command{
		Use:   "suggest [description]",
		Short: "ask the model for a starting allocation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			out, err := handler.GptRepository.SuggestPortfolio(
				context.Background(),
				strings.Join(args, " "),
			)
			if err != nil {
				return err
			}
			c.Println(out)
			return nil
		},
	}

	root.AddCommand(serveCmd, quoteCmd, suggestCmd)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
