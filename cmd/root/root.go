// Package root contains the root command for the application
package root

import (
	"github.com/spf13/cobra"

	"spendtrack/internal/config"
	"spendtrack/internal/logging"
	"spendtrack/internal/models"
	"spendtrack/internal/store"
	"spendtrack/internal/tracker"
)

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "spendtrack",
		Short: "A CLI tool to track accounts and categorize transactions with rules.",
		Long: `spendtrack is a CLI tool that keeps accounts, transactions and an ordered
rule list in a local data directory. Imported bank exports run through the
rule engine so every transaction lands in a category.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to spendtrack!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Failed to initialize configuration")
				return
			}
			Cfg = cfg

			Log = config.ConfigureLoggingFromConfig(cfg)
			logging.SetDefaultLogger(Log)

			if DataDir == "" {
				DataDir = cfg.Data.Directory
			}
		},
	}

	// DataDir overrides the configured data directory when set
	DataDir string

	// Shared account command flags
	AccountName   string
	AccountBank   string
	AccountNumber string
	AccountIBAN   string
	Currency      string
	Balance       string

	// Shared rule command flags
	RuleBookFile string
	RuleIndex    int

	// Shared import command flags
	InputFile          string
	IDColumn           string
	DateColumn         string
	PayeeColumn        string
	DescriptionColumns []string
	DebitColumn        string
	CreditColumn       string

	// Shared report command flags
	FromDate        string
	ToDate          string
	TransactionType string
	GroupBy         string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&DataDir, "data-dir", "D", "", "Data directory (defaults to the configured one)")
}

// OpenTracker builds a tracker backed by the data directory and loads the
// persisted accounts, rules and transactions into it.
func OpenTracker() (*tracker.Tracker, *store.Store, error) {
	st := store.New(DataDir, Log)

	accounts, err := st.LoadAccounts()
	if err != nil {
		return nil, nil, err
	}
	rules, err := st.LoadRules()
	if err != nil {
		return nil, nil, err
	}
	transactions, err := st.LoadTransactions()
	if err != nil {
		return nil, nil, err
	}

	tr := tracker.New(tracker.Config{DefaultCurrency: Cfg.DefaultCurrency()}, Log)
	if err := tr.Load(accounts, rules, transactions); err != nil {
		return nil, nil, err
	}
	return tr, st, nil
}

// SaveTracker writes the tracker's accounts, rules and transactions back to
// the data directory.
func SaveTracker(tr *tracker.Tracker, st *store.Store) error {
	if err := st.SaveAccounts(tr.Accounts()); err != nil {
		return err
	}
	if err := st.SaveRules(tr.Rules()); err != nil {
		return err
	}
	txs, err := tr.Transactions("")
	if err != nil {
		return err
	}
	byID := make(map[string]models.Transaction, len(txs))
	for _, tx := range txs {
		byID[tx.ID] = tx
	}
	return st.SaveTransactions(byID)
}
