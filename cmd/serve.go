package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/careerconnect/internal/logger"
	"github.com/spigell/careerconnect/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve resume analysis over HTTP",
	Run: func(cmd *cobra.Command, _ []string) {
		logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
		if err != nil {
			log.Fatalf("creating a logger: %s", err)
		}

		config, err := getConfig()
		if err != nil {
			logger.Fatal("getting a config", zap.Error(err))
		}

		logger.Info("starting the careerconnect server", zap.String("version", version))

		analyzer, _, err := newAnalyzer(config, logger)
		if err != nil {
			logger.Fatal("preparing analyzer", zap.Error(err))
		}

		srv := server.New(analyzer, server.Config{
			Address:        config.Serve.Address,
			MaxUploadBytes: int64(config.Serve.MaxUploadMB) << 20,
			DisplayLimit:   config.Display.Limit,
		}, logger)

		if err := srv.Run(cmd.Context()); err != nil {
			logger.Fatal("serving", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "address to listen on")
	viper.BindPFlag("serve.address", serveCmd.Flags().Lookup("address"))
}
