package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.)
// - default: Values common across all environments (timezone, room seed, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Log    LogConfig
	Hotel  HotelConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type HotelConfig struct {
	Rooms RoomSeeds `envconfig:"HOTEL_ROOMS" default:"101:Standard:100.00,102:Standard:100.00,201:Deluxe:200.00,202:Deluxe:200.00,301:Suite:300.00"`
}

// RoomSeed is one entry of the fixed room list loaded at startup.
type RoomSeed struct {
	Number        int
	Category      string
	PricePerNight string
}

// RoomSeeds decodes "number:category:price" entries separated by commas.
type RoomSeeds []RoomSeed

func (s *RoomSeeds) Decode(value string) error {
	var seeds RoomSeeds
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return fmt.Errorf("invalid room entry %q: want number:category:price", entry)
		}
		number, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return fmt.Errorf("invalid room number in %q: %w", entry, err)
		}
		seeds = append(seeds, RoomSeed{
			Number:        number,
			Category:      strings.TrimSpace(parts[1]),
			PricePerNight: strings.TrimSpace(parts[2]),
		})
	}
	if len(seeds) == 0 {
		return errors.New("room list is empty")
	}
	*s = seeds
	return nil
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func DefaultRoomSeeds() RoomSeeds {
	return RoomSeeds{
		{Number: 101, Category: "Standard", PricePerNight: "100.00"},
		{Number: 102, Category: "Standard", PricePerNight: "100.00"},
		{Number: 201, Category: "Deluxe", PricePerNight: "200.00"},
		{Number: 202, Category: "Deluxe", PricePerNight: "200.00"},
		{Number: 301, Category: "Suite", PricePerNight: "300.00"},
	}
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Hotel: HotelConfig{
			Rooms: DefaultRoomSeeds(),
		},
	}
}
