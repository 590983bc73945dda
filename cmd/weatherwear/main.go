package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SwatiRao07/WeatherWear/internal/common/config"
	apperrors "github.com/SwatiRao07/WeatherWear/internal/common/errors"
	"github.com/SwatiRao07/WeatherWear/internal/common/logger"
	"github.com/SwatiRao07/WeatherWear/internal/geolocate"
	"github.com/SwatiRao07/WeatherWear/internal/llm"
	"github.com/SwatiRao07/WeatherWear/internal/outfit"
	"github.com/SwatiRao07/WeatherWear/internal/recommend"
	"github.com/SwatiRao07/WeatherWear/internal/render"
	"github.com/SwatiRao07/WeatherWear/internal/weather"
	"github.com/SwatiRao07/WeatherWear/internal/web"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "weatherwear",
		Short: "Weather-based outfit recommendations",
		Long:  "WeatherWear turns a free-text location query into a weather-aware, styled outfit recommendation.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCLICmd(), newServeCmd())
	return root
}

func newCLICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cli",
		Short: "Run an interactive recommendation session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd.Context())
		},
	}
}

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the WeatherWear web server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

// buildService wires the pipeline from configuration.
func buildService(cfg *config.Config, log logger.Logger) *recommend.Service {
	weatherClient := weather.NewClient(
		cfg.Weather.APIKey,
		cfg.Weather.BaseURL,
		time.Duration(cfg.Weather.TimeoutMS)*time.Millisecond,
		log,
	)

	geoClient := geolocate.NewClient(geolocate.Config{
		IPInfoURL:    cfg.Geolocation.IPInfoURL,
		NominatimURL: cfg.Geolocation.NominatimURL,
		UserAgent:    cfg.Geolocation.UserAgent,
		Timeout:      time.Duration(cfg.Geolocation.TimeoutMS) * time.Millisecond,
		Fallback: geolocate.Place{
			City: cfg.Geolocation.FallbackCity,
			Lat:  cfg.Geolocation.FallbackLat,
			Lon:  cfg.Geolocation.FallbackLon,
		},
	}, log)

	llmClient := llm.NewClient(
		cfg.LLM.APIKey,
		cfg.LLM.Model,
		cfg.LLM.BaseURL,
		time.Duration(cfg.LLM.TimeoutMS)*time.Millisecond,
		log,
	)

	composer := outfit.NewComposer(llmClient, log)
	return recommend.NewService(weatherClient, geoClient, composer, log)
}

func runServe(ctx context.Context, addrOverride string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	svc := buildService(cfg, log)

	addr := cfg.Server.Address
	if addrOverride != "" {
		addr = addrOverride
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: web.NewServer(svc, log).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("web server listening", map[string]interface{}{"addr": addr})
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runInteractive(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		color.Red("Error: %v", err)
		return err
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	svc := buildService(cfg, log)

	printWelcome()
	printInstructions()

	reader := bufio.NewReader(os.Stdin)

	locationQuery := prompt(reader, "Enter location: ")
	styleInput := prompt(reader, "Enter style preference (casual/formal/sporty): ")
	forecastInput := strings.ToLower(prompt(reader, "Show 5-day forecast? (y/n) [n]: "))
	showForecast := forecastInput == "y" || forecastInput == "yes" || forecastInput == "true"

	color.Cyan("\nFetching weather data and generating outfit recommendation...")

	res, err := svc.Process(ctx, recommend.Request{
		Query:        locationQuery,
		Style:        styleInput,
		ShowForecast: showForecast,
	})
	if err != nil {
		se := apperrors.AsStandard(err)
		color.Red("\nError: %s", se.UserMessage())
		return err
	}

	if res.StyleWarned {
		color.Yellow("Unknown style preference, defaulting to casual.")
	}

	fmt.Println("\n" + render.Weather(res.Weather))
	fmt.Println(render.OutfitIntro())
	fmt.Println(render.Recommendation(res.Outfit, res.Weather, res.Location, res.Style))

	if showForecast {
		if res.ForecastWarning != "" {
			color.Yellow("%s", res.ForecastWarning)
		} else if len(res.Forecast.Samples) > 0 {
			fmt.Println(render.Forecast(res.Forecast))
		}
	}

	return nil
}

func printWelcome() {
	color.Cyan("\n===== WeatherWear: Weather-Based Outfit Recommender =====")
	color.Cyan("Get smart outfit recommendations based on weather conditions\n")
}

func printInstructions() {
	color.Yellow("Enter a location and optional time")
	fmt.Println("Examples:")
	fmt.Println("  - New York")
	fmt.Println("  - Tomorrow in London")
	fmt.Println("  - Tokyo tomorrow")
	fmt.Println("  - here (uses your current location)")
	fmt.Println("  - my location (uses your current location)")
	fmt.Println()
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(color.GreenString(label))
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
