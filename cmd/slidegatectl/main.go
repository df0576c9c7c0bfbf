// Command slidegatectl exercises the SlideGate API from the command
// line: generating challenges, checking and verifying answers, sending
// and verifying OTP SMS, and clearing rate limits.
//
// Configuration comes from the environment (optionally via a .env
// file): SLIDEGATE_BASE_URL, SLIDEGATE_API_KEY, SLIDEGATE_APP_NAME,
// SLIDEGATE_CLIENT_IP, SLIDEGATE_LOG_LEVEL.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	slidegate "github.com/slidegate/client-go"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "slidegatectl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SLIDEGATE")
	v.AutomaticEnv()
	v.SetDefault("log_level", "info")
	v.SetDefault("timeout", "30s")

	logger := logrus.New()
	if level, err := logrus.ParseLevel(v.GetString("log_level")); err == nil {
		logger.SetLevel(level)
	}

	client, err := slidegate.New(slidegate.Config{
		BaseURL: v.GetString("base_url"),
		APIKey:  v.GetString("api_key"),
		AppName: v.GetString("app_name"),
	},
		slidegate.WithTimeout(v.GetDuration("timeout")),
		slidegate.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	if ip := v.GetString("client_ip"); ip != "" {
		client.SetClientIP(ip)
	}

	if len(os.Args) < 2 {
		return fmt.Errorf("usage: slidegatectl <generate|check|verify|send-sms|verify-sms|clear-ip|clear-phone> [args]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "generate":
		challenge, err := client.GenerateCaptcha(ctx)
		if err != nil {
			return err
		}
		return printJSON(challenge)
	case "check":
		if len(os.Args) < 4 {
			return fmt.Errorf("usage: slidegatectl check <captcha-key> <x,y>")
		}
		ok, err := client.CheckCaptcha(ctx, os.Args[2], os.Args[3])
		if err != nil {
			return err
		}
		fmt.Println(ok)
		return nil
	case "verify":
		if len(os.Args) < 4 {
			return fmt.Errorf("usage: slidegatectl verify <captcha-key> <x,y>")
		}
		result, err := client.VerifyCaptcha(ctx, os.Args[2], os.Args[3])
		if err != nil {
			return err
		}
		return printJSON(result)
	case "send-sms":
		if len(os.Args) < 6 {
			return fmt.Errorf("usage: slidegatectl send-sms <captcha-key> <x,y> <phone> <code>")
		}
		result, err := client.SendSMSWithCaptcha(ctx, slidegate.SendSMSParams{
			CaptchaKey: os.Args[2],
			Value:      os.Args[3],
			Phone:      os.Args[4],
			Code:       os.Args[5],
		})
		if err != nil {
			return err
		}
		return printJSON(result)
	case "verify-sms":
		if len(os.Args) < 4 {
			return fmt.Errorf("usage: slidegatectl verify-sms <phone> <code>")
		}
		result, err := client.VerifySMS(ctx, os.Args[2], os.Args[3])
		if err != nil {
			return err
		}
		return printJSON(result)
	case "clear-ip":
		result, err := client.ClearIPRateLimit(ctx)
		if err != nil {
			return err
		}
		return printJSON(result)
	case "clear-phone":
		if len(os.Args) < 3 {
			return fmt.Errorf("usage: slidegatectl clear-phone <phone>")
		}
		result, err := client.ClearPhoneRateLimit(ctx, os.Args[2])
		if err != nil {
			return err
		}
		return printJSON(result)
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
