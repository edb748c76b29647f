// Command lisptick-cli sends a request to a LispTick server and prints the
// result, either fully materialized (get) or streamed delivery-by-delivery
// (walk).
//
// Connection settings come from flags, LISPTICK_* environment variables, or
// a config file, in that order of precedence.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	lisptick "github.com/lisptickio/lisptick-go"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "lisptick-cli",
		Short:         "Query a LispTick expression-evaluation server",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			v.SetEnvPrefix("LISPTICK")
			v.AutomaticEnv()

			if cfg := v.GetString("config"); cfg != "" {
				v.SetConfigFile(cfg)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config file: %w", err)
				}
			}

			if v.GetBool("verbose") {
				logrus.SetLevel(logrus.DebugLevel)
			}

			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("host", "lisptick.org", "server host")
	flags.Int("port", lisptick.DefaultPort, "server port")
	flags.String("config", "", "optional config file (yaml/toml/json)")
	flags.Bool("verbose", false, "enable debug frame traces")

	root.AddCommand(newGetCmd(v), newWalkCmd(v))

	return root
}

func newClient(v *viper.Viper) (*lisptick.Client, error) {
	return lisptick.NewClient(v.GetString("host"), v.GetInt("port"))
}

// readCode resolves the request text: a literal argument, or stdin when the
// argument is "-".
func readCode(args []string) (string, error) {
	if args[0] != "-" {
		return args[0], nil
	}

	code, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading request from stdin: %w", err)
	}

	return string(code), nil
}
