package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/prasetyowira/qrbadge/client"
	"github.com/prasetyowira/qrbadge/config"
	"github.com/prasetyowira/qrbadge/constant"
	"github.com/prasetyowira/qrbadge/domain/generator"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "qrbadge",
		Short:         "Generate QR codes with an initials badge",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

// userMessage renders client errors the way the form shows them.
func userMessage(err error) string {
	var statusErr *client.StatusError
	switch {
	case errors.Is(err, client.ErrEmptyText):
		return constant.MsgEnterText
	case errors.As(err, &statusErr):
		return fmt.Sprintf("%s: %d - %s", constant.MsgServerError, statusErr.StatusCode, statusErr.Body)
	case errors.Is(err, client.ErrRequestFailed):
		cause := strings.TrimPrefix(err.Error(), client.ErrRequestFailed.Error()+": ")
		return fmt.Sprintf("%s: %s", constant.MsgRequestFailed, cause)
	default:
		return err.Error()
	}
}

func newGenerateCmd() *cobra.Command {
	var (
		configPath string
		server     string
		text       string
		initials   string
		boxSize    int
		border     int
		out        string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Send text to the service and save the PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("server") {
				server = cfg.ServiceURL
			}

			req := generator.GenerationRequest{
				Text:    text,
				BoxSize: generator.NewIntParam(boxSize),
				Border:  generator.NewIntParam(border),
			}
			if initials != "" {
				req.Initials = &initials
			}

			c := client.New(server, cfg.ClientTimeout)
			data, err := c.Generate(context.Background(), req)
			if err != nil {
				return err
			}

			if out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), constant.MsgSaved+"\n", out, len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_FILE"), "Path to config file")
	cmd.Flags().StringVar(&server, "server", "", "Service base URL (default from SERVICE_URL)")
	cmd.Flags().StringVarP(&text, "text", "t", "", "Text or URL to encode")
	cmd.Flags().StringVarP(&initials, "initials", "i", "", "Initials for the badge (optional, e.g. JS)")
	cmd.Flags().IntVar(&boxSize, "box-size", generator.DefaultBoxSize, "Box size (resolution)")
	cmd.Flags().IntVar(&border, "border", generator.DefaultBorder, "Quiet zone width in modules")
	cmd.Flags().StringVarP(&out, "out", "o", "qr.png", "Output file, or - for stdout")

	return cmd
}
