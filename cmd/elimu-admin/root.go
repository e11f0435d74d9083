package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/elimuhub/elimu-go/pkg/elimu"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "elimu-admin",
	Short: "Administer the Elimu content and job-board platform",
	Long: `elimu-admin manages the Elimu platform from the command line: books,
authors, jobs, scholarships, articles, videos, users, companies, plans
and subscriptions.

Configuration is read from flags, ELIMU_* environment variables and
~/.elimu/config.yaml, in that order.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("api-url", "", "API base URL (default "+elimu.DefaultBaseURL+")")
	rootCmd.PersistentFlags().String("token", "", "API token, skips the stored session")
	rootCmd.PersistentFlags().String("session-file", "", "path of the stored session (default ~/.elimu/session.json)")

	_ = viper.BindPFlag("api_url", rootCmd.PersistentFlags().Lookup("api-url"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("session_file", rootCmd.PersistentFlags().Lookup("session-file"))
}

func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".elimu"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("ELIMU")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// sessionFile resolves the session path, defaulting under the home directory
func sessionFile() string {
	if path := viper.GetString("session_file"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".elimu", "session.json")
}

// newClient builds a client from the resolved configuration. A token takes
// precedence over the stored session.
func newClient() (*elimu.Client, error) {
	opts := &elimu.ClientOptions{
		BaseURL:  viper.GetString("api_url"),
		Notifier: &stdoutNotifier{},
	}

	if token := viper.GetString("token"); token != "" {
		opts.Token = token
	} else {
		opts.SessionFile = sessionFile()
	}

	return elimu.NewClient(opts)
}
