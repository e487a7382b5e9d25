package services

import (
	"testing"

	"ledgerly/internal/models"
	"ledgerly/internal/testutil"
)

func TestCreateBudget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewBudgetService(db)
	user := testutil.CreateTestUser(t, db)

	t.Run("creates budget with categories", func(t *testing.T) {
		b, err := service.CreateBudget(user.ID, BudgetInput{
			Income:      50000,
			TotalBudget: 40000,
			Categories: []BudgetCategoryInput{
				{Label: "Rent", Value: 15000},
				{Label: "Groceries", Value: 10000},
			},
		})
		testutil.AssertNoError(t, err)
		if b.ID == "" {
			t.Fatal("budget should have an ID")
		}
		if len(b.Categories) != 2 {
			t.Errorf("expected 2 categories, got %d", len(b.Categories))
		}

		var count int64
		db.Model(&models.BudgetCategory{}).Where("budget_id = ?", b.ID).Count(&count)
		if count != 2 {
			t.Errorf("expected 2 persisted category rows, got %d", count)
		}
	})

	t.Run("rejects budget exceeding income", func(t *testing.T) {
		_, err := service.CreateBudget(user.ID, BudgetInput{Income: 1000, TotalBudget: 2000})
		testutil.AssertValidationError(t, err, "totalBudget")
	})

	t.Run("rejects category total exceeding budget", func(t *testing.T) {
		_, err := service.CreateBudget(user.ID, BudgetInput{
			Income:      5000,
			TotalBudget: 3000,
			Categories: []BudgetCategoryInput{
				{Label: "Rent", Value: 2500},
				{Label: "Travel", Value: 1000},
			},
		})
		testutil.AssertValidationError(t, err, "categories")
	})

	t.Run("rejects zero amounts", func(t *testing.T) {
		_, err := service.CreateBudget(user.ID, BudgetInput{Income: 0, TotalBudget: 0})
		testutil.AssertValidationError(t, err, "income")
	})
}

func TestGetBudgetSummaries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewBudgetService(db)
	user := testutil.CreateTestUser(t, db)

	t.Run("no budget yields empty summaries", func(t *testing.T) {
		summaries, err := service.GetBudgetSummaries(user.ID)
		testutil.AssertNoError(t, err)
		if len(summaries) != 0 {
			t.Errorf("expected no summaries, got %v", summaries)
		}
	})

	t.Run("matches spend to categories case-insensitively", func(t *testing.T) {
		_, err := service.CreateBudget(user.ID, BudgetInput{
			Income:      50000,
			TotalBudget: 40000,
			Categories: []BudgetCategoryInput{
				{Label: "Rent", Value: 15000},
				{Label: "Travel", Value: 5000},
			},
		})
		testutil.AssertNoError(t, err)

		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, "rent", 12000)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, "rent", 1000)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, "travel", 6000)
		// Income must never count as spend.
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, "salary", 50000)

		summaries, err := service.GetBudgetSummaries(user.ID)
		testutil.AssertNoError(t, err)
		if len(summaries) != 2 {
			t.Fatalf("expected 2 summaries, got %d", len(summaries))
		}

		byCategory := map[string]models.BudgetSummary{}
		for _, s := range summaries {
			byCategory[s.Category] = s
		}
		if byCategory["Rent"].Spent != 13000 {
			t.Errorf("expected Rent spend 13000, got %v", byCategory["Rent"].Spent)
		}
		if byCategory["Travel"].Spent != 6000 {
			t.Errorf("expected Travel spend 6000, got %v", byCategory["Travel"].Spent)
		}
		if byCategory["Rent"].TotalBudget != 15000 {
			t.Errorf("expected Rent allocation 15000, got %v", byCategory["Rent"].TotalBudget)
		}
	})

	t.Run("only the other user's data is invisible", func(t *testing.T) {
		other := testutil.CreateTestUser(t, db)
		summaries, err := service.GetBudgetSummaries(other.ID)
		testutil.AssertNoError(t, err)
		if len(summaries) != 0 {
			t.Errorf("expected no summaries for the other user, got %v", summaries)
		}
	})
}
