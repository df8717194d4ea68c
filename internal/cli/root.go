package cli

import (
	"fmt"

	"github.com/idosos/backend/internal/adapter/viacep"
	"github.com/idosos/backend/internal/core/repository"
	"github.com/idosos/backend/internal/core/service"
	"github.com/idosos/backend/internal/infrastructure/sqlite"
	"github.com/idosos/backend/internal/logging"
	"github.com/idosos/backend/internal/metrics"
	"github.com/idosos/backend/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "idosos",
	Short: "Idosos - registration of elders under care",
	Long: `Idosos keeps a registry of elders under care together with their guardian
contact and address.

It provides:
- A REST API to register, list and delete elders
- Postal code (CEP) lookup to fill in addresses
- Command line access to the same registry`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./idosos.yml, then /etc/idosos/idosos.yml)")
}

// initServices initializes all services
func initServices() (*Services, error) {
	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	logger.WithField("path", db.Path()).Debug("Database ready")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	elderRepo := sqlite.NewElderRepository(db)
	resolver := viacep.NewClient(cfg.CEPBaseURL, cfg.CEPTimeout)

	return &Services{
		DB:             db,
		Logger:         logger,
		Registry:       registry,
		ElderRepo:      elderRepo,
		ElderService:   service.NewElderService(elderRepo, m, logger),
		AddressService: service.NewAddressService(resolver, m, logger),
		closeLog:       closeLog,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB             *sqlite.DB
	Logger         *logrus.Logger
	Registry       *prometheus.Registry
	ElderRepo      repository.ElderRepository
	ElderService   *service.ElderService
	AddressService *service.AddressService

	closeLog func() error
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
	if s.closeLog != nil {
		s.closeLog()
	}
}
