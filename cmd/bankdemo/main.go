package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"bank/config"
	"bank/internal/core"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	logger.InfoContext(ctx, "Starting bank simulation")

	if err := run(ctx, logger, cfg); err != nil {
		logger.ErrorContext(ctx, "simulation failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Simulation complete")
}

func run(ctx context.Context, logger *slog.Logger, cfg config.Config) error {
	bank := core.NewBank()

	alice, err := core.NewClient("Alice Souza", "12345678901", core.Address{
		Street:       "Rua das Flores",
		Number:       100,
		Neighborhood: "Centro",
		City:         "Recife",
		State:        "PE",
		PostalCode:   "50000-000",
	})
	if err != nil {
		return err
	}

	bruno, err := core.NewClient("Bruno Lima", "98765432109")
	if err != nil {
		return err
	}

	bank.RegisterClient(alice)
	bank.RegisterClient(bruno)

	checking := core.NewCheckingAccount(alice, "0001-1", decimal.NewFromInt(500),
		core.WithOverdraftLimit(cfg.Accounts.OverdraftLimit))
	savings := core.NewSavingsAccount(bruno, "0002-1", decimal.NewFromInt(1000),
		core.WithInterestRate(cfg.Accounts.SavingsInterestRate),
		core.WithDailyWithdrawalLimit(cfg.Accounts.DailyWithdrawalLimit))

	if err := bank.OpenAccount(alice, checking); err != nil {
		return err
	}
	if err := bank.OpenAccount(bruno, savings); err != nil {
		return err
	}

	if err := bank.Deposit(checking, decimal.NewFromInt(250)); err != nil {
		return err
	}
	logger.InfoContext(ctx, "deposit", "account", checking.Number(), "balance", checking.Balance())

	// Draws 300 from the overdraft line on top of the 750 balance.
	if err := bank.Withdraw(checking, decimal.NewFromInt(1050)); err != nil {
		return err
	}
	logger.InfoContext(ctx, "withdrawal into overdraft",
		"account", checking.Number(),
		"balance", checking.Balance(),
		"overdraft_limit", checking.OverdraftLimit())

	if err := bank.Transfer(savings, checking, decimal.NewFromInt(200)); err != nil {
		return err
	}
	logger.InfoContext(ctx, "transfer",
		"from", savings.Number(),
		"to", checking.Number())

	var opErr *core.OperationError
	if err := bank.Withdraw(savings, decimal.NewFromInt(100000)); errors.As(err, &opErr) {
		logger.InfoContext(ctx, "withdrawal rejected", "account", savings.Number(), "reason", opErr)
	}

	savings.ApplyInterest()
	logger.InfoContext(ctx, "interest applied",
		"account", savings.Number(),
		"rate", savings.InterestRate(),
		"balance", savings.Balance())

	for _, acct := range []core.Account{checking, savings} {
		stmt, err := bank.Statement(acct)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "statement",
			"account", stmt.AccountNumber,
			"balance", stmt.Balance,
			"operations", len(stmt.Operations))
		for _, op := range stmt.Operations {
			logger.InfoContext(ctx, "operation",
				"account", stmt.AccountNumber,
				"kind", op.Kind,
				"amount", op.Amount,
				"at", op.At)
		}
	}

	return nil
}
