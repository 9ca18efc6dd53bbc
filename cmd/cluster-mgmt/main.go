package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"gopkg.in/yaml.v2"

	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/application/alerts"
	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/application/thresholds"
	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/application/watchdog"
	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/infrastructure/management"
	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/infrastructure/notifications"
	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/infrastructure/router"
	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/infrastructure/storage"
	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/infrastructure/webevents"
	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/presentation/api"
)

const serviceName string = "cluster-mgmt"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort
	policiesFile
	configurationFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode

	watchdogEnabled
)

type appConfig struct {
	Watchdog struct {
		Interval int `yaml:"interval"`
	} `yaml:"watchdog"`
	Thresholds struct {
		EntitledPlanTiers []string `yaml:"entitledPlanTiers"`
	} `yaml:"thresholds"`
	SMTP notifications.SMTPConfig `yaml:"smtp"`
}

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		policiesFile:      "/opt/rabbitwatch/config/authz.rego",
		configurationFile: "/opt/rabbitwatch/config/config.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "rabbitwatch",
		dbSSLMode:  "disable",

		watchdogEnabled: "false",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	cfgFile, err := os.Open(flags[configurationFile])
	exitIf(err, logger, "could not open configuration file")

	cfg, err := parseConfigFile(cfgFile)
	exitIf(err, logger, "could not parse configuration file")

	policies, err := os.Open(flags[policiesFile])
	exitIf(err, logger, "unable to open opa policy file")
	defer policies.Close()

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword],
		flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")

	messenger.Start()

	thresholdSvc := thresholds.New(s, cfg.Thresholds.EntitledPlanTiers)

	alertSvc := alerts.New(s, management.NewClient(), thresholdSvc, messenger, alerts.Senders{
		Email:   notifications.NewEmailSender(cfg.SMTP),
		Webhook: notifications.NewWebhookSender(),
		Slack:   notifications.NewSlackSender(),
	})

	we := webevents.New()

	interval := time.Duration(cfg.Watchdog.Interval) * time.Second
	wd := watchdog.New(s, alertSvc, interval)

	if enabled, _ := strconv.ParseBool(flags[watchdogEnabled]); enabled {
		wd.Start(ctx)
		defer wd.Stop(ctx)
	}

	r := router.New(serviceName)

	_, err = api.RegisterHandlers(ctx, r, policies, alertSvc, thresholdSvc, we)
	exitIf(err, logger, "failed to register handlers")

	apiPort := flags[listenAddress] + ":" + flags[servicePort]
	logger.Info("starting to listen for incoming connections", "address", apiPort)

	err = http.ListenAndServe(apiPort, r)

	we.Shutdown()
	messenger.Close()
	s.Close()

	exitIf(err, logging.GetFromContext(ctx), "failed to listen for connections")
}

func parseConfigFile(cfgFile io.ReadCloser) (*appConfig, error) {
	defer cfgFile.Close()

	b, err := io.ReadAll(cfgFile)
	if err != nil {
		return nil, err
	}

	cfg := &appConfig{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Watchdog.Interval <= 0 {
		cfg.Watchdog.Interval = 60
	}

	if len(cfg.Thresholds.EntitledPlanTiers) == 0 {
		cfg.Thresholds.EntitledPlanTiers = []string{"startup", "pro", "enterprise"}
	}

	return cfg, nil
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[policiesFile] = envOrDef(ctx, "POLICIES_FILE", flags[policiesFile])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	flags[watchdogEnabled] = envOrDef(ctx, "WATCHDOG_ENABLED", flags[watchdogEnabled])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("policies", "an authorization policy file", apply(policiesFile))
	flag.Func("config", "service configuration file", apply(configurationFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
