package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lisptickio/lisptick-go/stream"
)

func newWalkCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk <code | ->",
		Short: "Evaluate a request and print every delivery in wire order",
		Long: `Walk streams the response without assembling it in memory, which is the
right mode for large time series. Each line is "<uid> <value>" or, for
time-series points, "<uid> <time> <value>".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readCode(args)
			if err != nil {
				return err
			}

			client, err := newClient(v)
			if err != nil {
				return err
			}

			return client.WalkResult(code, func(_ *stream.Reader, d stream.Delivery) error {
				if d.Point != nil {
					cmd.Printf("%d %s\n", d.UID, d.Point)
					return nil
				}

				cmd.Printf("%d %s\n", d.UID, d.Value)

				return nil
			})
		},
	}

	return cmd
}
