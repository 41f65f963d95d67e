package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"

	"github.com/urfave/cli"

	"github.com/nativebridge/portal-go/internal/config"
	"github.com/nativebridge/portal-go/internal/logger"
	"github.com/nativebridge/portal-go/internal/portal/repository"
	"github.com/nativebridge/portal-go/internal/portal/usecase"
)

var (
	app         *cli.App
	version     string
	configPath  string
	portalConf  config.PortalConfig
	apiAddress  string
	timeoutSecs int
	logLevel    string
	code        string
	filePath    string
	workURL     string
	notes       string
	noInput     bool
	fileIndex   int
	fileKey     string
	outputPath  string
)

// loadConfig reads the config file selected by --config, or the defaults.
func loadConfig() (err error) {
	portalConf, err = config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return logger.Init(portalConf.LogLevel)
}

func newAPIClient() *repository.APIClient {
	return repository.NewAPIClient(portalConf.API)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app = cli.NewApp()
	app.Name = "portal"
	app.Usage = "NativeBridge submission portal"
	app.Author = "NativeBridge"
	app.Version = version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "config",
			Value:       "",
			Destination: &configPath,
			Usage:       "Path to config file (default ~/.portal/config.yml)",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "config",
			Usage: "Configure the portal client",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "api",
					Value:       config.DefaultBaseURL,
					Destination: &apiAddress,
					Usage:       "Portal API base address",
				},
				cli.IntFlag{
					Name:        "timeout",
					Value:       0,
					Destination: &timeoutSecs,
					Usage:       "Request timeout in seconds, 0 for none",
				},
				cli.StringFlag{
					Name:        "log-level",
					Value:       "warn",
					Destination: &logLevel,
					Usage:       "Log level (error, warn, info, debug)",
				},
			},
			Action: func(c *cli.Context) (err error) {
				if len(apiAddress) < 1 {
					msg := "API address should not be empty. Example: "
					msg += "portal config --api https://nativebridgeproject.fly.dev"
					return errors.New(msg)
				}
				_, err = url.ParseRequestURI(apiAddress)
				if err != nil {
					return
				}

				path := configPath
				if path == "" {
					path, err = config.UserConfigPath()
					if err != nil {
						return
					}
				}

				conf := config.PortalConfig{
					API: config.APIConfig{
						BaseURL:        apiAddress,
						TimeoutSeconds: timeoutSecs,
					},
					LogLevel: logLevel,
				}
				err = config.Save(conf, path)
				if err != nil {
					return
				}
				fmt.Println("portal is successfully configured at " + path)
				return nil
			},
		},

		{
			Name:      "lookup",
			Usage:     "Check a submission code",
			ArgsUsage: "CODE",
			Action: func(c *cli.Context) (err error) {
				err = loadConfig()
				if err != nil {
					return
				}
				flow := usecase.NewSubmissionFlow(newAPIClient())
				flow.SetCode(c.Args().First())
				session, err := flow.Lookup(ctx)
				if err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				printSession(session)
				return nil
			},
		},

		{
			Name:  "submit",
			Usage: "Submit work for a submission code",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "code",
					Destination: &code,
					Usage:       "6-digit submission code",
				},
				cli.StringFlag{
					Name:        "file",
					Destination: &filePath,
					Usage:       "File to upload",
				},
				cli.StringFlag{
					Name:        "url",
					Destination: &workURL,
					Usage:       "Link to the work (GitHub, Figma, website, ...)",
				},
				cli.StringFlag{
					Name:        "notes",
					Destination: &notes,
					Usage:       "Notes for the client",
				},
				cli.BoolFlag{
					Name:        "no-input",
					Destination: &noInput,
					Usage:       "Never prompt; fail when something is missing",
				},
			},
			Action: func(c *cli.Context) (err error) {
				err = loadConfig()
				if err != nil {
					return
				}
				flow := usecase.NewSubmissionFlow(newAPIClient())
				s := &submitSession{
					flow:        flow,
					interactive: !noInput,
					code:        code,
					filePath:    filePath,
					url:         workURL,
					notes:       notes,
				}
				return s.run(ctx)
			},
		},

		{
			Name:      "review",
			Usage:     "Show a job and its submissions",
			ArgsUsage: "JOB_ID",
			Action: func(c *cli.Context) (err error) {
				err = loadConfig()
				if err != nil {
					return
				}
				flow := usecase.NewReviewFlow(newAPIClient(), nil)
				job, err := flow.FetchJob(ctx, c.Args().First())
				if err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				printJob(job)
				return nil
			},
		},

		{
			Name:      "download",
			Usage:     "Download a submitted file through a signed link",
			ArgsUsage: "JOB_ID",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:        "index",
					Destination: &fileIndex,
					Usage:       "File number as listed by review (starting at 1)",
				},
				cli.StringFlag{
					Name:        "key",
					Destination: &fileKey,
					Usage:       "Storage key of the file",
				},
				cli.StringFlag{
					Name:        "output",
					Destination: &outputPath,
					Usage:       "Save the file here instead of opening it in the browser",
				},
			},
			Action: func(c *cli.Context) (err error) {
				err = loadConfig()
				if err != nil {
					return
				}
				client := newAPIClient()
				d := &downloadSession{
					flow:       usecase.NewReviewFlow(client, repository.BrowserOpener{}),
					client:     client,
					jobID:      c.Args().First(),
					index:      fileIndex,
					key:        fileKey,
					outputPath: outputPath,
				}
				return d.run(ctx)
			},
		},
	}

	err := app.Run(os.Args)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, usecase.MsgCanceled)
		os.Exit(130)
	}
	if err != nil {
		logger.Logger.Fatal(err)
	}
}
