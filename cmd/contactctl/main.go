package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexvelboy/contact-api/internal/version"
)

var serverURL string

var httpClient = &http.Client{Timeout: 15 * time.Second}

var rootCmd = &cobra.Command{
	Use:   "contactctl",
	Short: "contactctl - operator CLI for the alexvelboy.com contact API",
	Long: `contactctl talks to a running contact API instance. It can check the
service health, fire a test submission through the relay, and exercise
the chat responder.`,
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of a running contact API",
	Run: func(cmd *cobra.Command, args []string) {
		body, status, err := getJSON(serverURL + "/api/health")
		if err != nil {
			fmt.Printf("Health check failed: %v\n", err)
			os.Exit(1)
		}
		if status != http.StatusOK {
			fmt.Printf("Health check returned status %d\n", status)
			os.Exit(1)
		}
		fmt.Println(body)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show client version and the server's liveness marker",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Client: %s\n", version.Info())

		body, status, err := getJSON(serverURL + "/api/contact")
		if err != nil || status != http.StatusOK {
			fmt.Println("Server: unreachable")
			return
		}

		var liveness struct {
			Marker string `json:"marker"`
		}
		if err := json.Unmarshal([]byte(body), &liveness); err == nil && liveness.Marker != "" {
			fmt.Printf("Server: %s\n", liveness.Marker)
		}
	},
}

func getJSON(url string) (string, int, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, err
	}
	return string(body), resp.StatusCode, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Base URL of the contact API")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
