// Package accounts handles the account management commands
package accounts

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"spendtrack/cmd/root"
	"spendtrack/internal/logging"
	"spendtrack/internal/models"
)

// Cmd represents the accounts command
var Cmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage tracked accounts",
	Long:  `List, add and delete the bank accounts the tracker knows about.`,
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an account",
	Long:  `Add an account to the tracker. The name and IBAN are required and must be unique.`,
	Run:   addFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an account",
	Run:   deleteFunc,
}

func init() {
	addCmd.Flags().StringVarP(&root.AccountName, "name", "n", "", "Account name (required)")
	addCmd.Flags().StringVarP(&root.AccountBank, "bank", "b", "", "Bank name")
	addCmd.Flags().StringVar(&root.AccountNumber, "number", "", "Account number")
	addCmd.Flags().StringVar(&root.AccountIBAN, "iban", "", "Account IBAN (required)")
	addCmd.Flags().StringVarP(&root.Currency, "currency", "c", "CHF", "Account currency (CHF, EUR or USD)")
	addCmd.Flags().StringVar(&root.Balance, "balance", "0", "Starting balance")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("iban")

	deleteCmd.Flags().StringVarP(&root.AccountName, "name", "n", "", "Account name (required)")
	_ = deleteCmd.MarkFlagRequired("name")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(deleteCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	tr, _, err := root.OpenTracker()
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to load data")
		return
	}

	accounts := tr.Accounts()
	names := make([]string, 0, len(accounts))
	for name := range accounts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		account := accounts[name]
		fmt.Printf("%s (%s): %s %s\n", account.Name, account.Bank, account.Balance, account.Currency)
	}
	if len(names) == 0 {
		root.Log.Info("No accounts yet, add one with 'spendtrack accounts add'")
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	tr, st, err := root.OpenTracker()
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to load data")
		return
	}

	currency, err := models.ParseCurrency(root.Currency)
	if err != nil {
		root.Log.WithError(err).Fatal("Invalid currency")
		return
	}

	balance := models.ParseAmount(root.Balance)
	account := models.Account{
		Name:            root.AccountName,
		Bank:            root.AccountBank,
		AccountNumber:   root.AccountNumber,
		IBAN:            root.AccountIBAN,
		Currency:        currency,
		StartingBalance: balance,
		Balance:         balance,
	}

	if err := tr.AddAccount(account); err != nil {
		root.Log.WithError(err).Fatal("Failed to add account")
		return
	}
	if err := root.SaveTracker(tr, st); err != nil {
		root.Log.WithError(err).Fatal("Failed to save data")
		return
	}
	root.Log.WithField(logging.FieldAccount, account.Name).Info("Added account")
}

func deleteFunc(cmd *cobra.Command, args []string) {
	tr, st, err := root.OpenTracker()
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to load data")
		return
	}

	if err := tr.DeleteAccount(root.AccountName); err != nil {
		root.Log.WithError(err).Fatal("Failed to delete account")
		return
	}
	if err := root.SaveTracker(tr, st); err != nil {
		root.Log.WithError(err).Fatal("Failed to save data")
		return
	}
	root.Log.WithField(logging.FieldAccount, root.AccountName).Info("Deleted account")
}
