package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lisptickio/lisptick-go/internal/hash"
	"github.com/lisptickio/lisptick-go/stream"
)

func newGetCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <code | ->",
		Short: "Evaluate a request and print the materialized result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readCode(args)
			if err != nil {
				return err
			}

			client, err := newClient(v)
			if err != nil {
				return err
			}

			limit := v.GetInt64("limit")
			watch := v.GetDuration("watch")
			if watch <= 0 {
				result, err := client.GetResultWithLimit(code, limit)
				if err != nil {
					return err
				}
				cmd.Println(result)

				return nil
			}

			// Watch mode re-issues the request on an interval and prints
			// only when the rendered result changes; the last rendering is
			// cached under the request fingerprint.
			cache := map[uint64]string{}
			key := hash.Fingerprint(code)
			ticker := time.NewTicker(watch)
			defer ticker.Stop()

			for {
				result, err := client.GetResultWithLimit(code, limit)
				if err != nil {
					return err
				}
				if rendered := result.String(); cache[key] != rendered {
					cache[key] = rendered
					cmd.Printf("%s %s\n", time.Now().Format(time.RFC3339), rendered)
				}

				<-ticker.C
			}
		},
	}

	cmd.Flags().Int64("limit", stream.NoLimit, "point budget, negative for unlimited")
	cmd.Flags().Duration("watch", 0, "re-issue the request on this interval, printing on change")

	return cmd
}
