package repository

import (
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Karasowl/laralis-sub007/infrastructure/database/postgres"
	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/pkg/utils"
)

const expensesTable = "expenses"

type ExpenseRepository interface {
	CreateExpense(expense *domain.Expense) (*domain.Expense, error)
	MarketingTotalCentsInRange(clinicID string, from, to time.Time) (int64, error)
	ListMarketingInRange(clinicID string, from, to time.Time) ([]*domain.Expense, error)
}

type expenseRepository struct {
	conn *postgres.Connection
}

func NewExpenseRepository(conn *postgres.Connection) ExpenseRepository {
	return &expenseRepository{
		conn: conn,
	}
}

func (r *expenseRepository) CreateExpense(expense *domain.Expense) (*domain.Expense, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	expense.ID = id

	if expense.SpentAt.IsZero() {
		expense.SpentAt = time.Now().UTC()
	}

	queryBuilder := squirrel.
		Insert(expensesTable).
		Columns("id", "clinic_id", "category", "concept", "amount_cents", "spent_at").
		Values(expense.ID, expense.ClinicID, expense.Category, expense.Concept, expense.AmountCents, expense.SpentAt).
		PlaceholderFormat(squirrel.Dollar)

	expenseSQL, expenseArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(expenseSQL, expenseArgs...)
	if err != nil {
		return nil, err
	}

	return expense, nil
}

func (r *expenseRepository) MarketingTotalCentsInRange(clinicID string, from, to time.Time) (int64, error) {
	queryBuilder := squirrel.
		Select("COALESCE(SUM(amount_cents), 0)").
		From(expensesTable).
		Where(squirrel.Eq{"clinic_id": clinicID, "category": domain.ExpenseCategoryMarketing}).
		Where(occurredWithin("spent_at", from, to)).
		PlaceholderFormat(squirrel.Dollar)

	totalSQL, totalArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	if err := r.conn.QueryRow(totalSQL, totalArgs...).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *expenseRepository) ListMarketingInRange(clinicID string, from, to time.Time) ([]*domain.Expense, error) {
	queryBuilder := squirrel.
		Select("id", "clinic_id", "category", "concept", "amount_cents", "spent_at", "created_at").
		From(expensesTable).
		Where(squirrel.Eq{"clinic_id": clinicID, "category": domain.ExpenseCategoryMarketing}).
		Where(occurredWithin("spent_at", from, to)).
		OrderBy("spent_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	expenseSQL, expenseArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(expenseSQL, expenseArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(
			&expense.ID,
			&expense.ClinicID,
			&expense.Category,
			&expense.Concept,
			&expense.AmountCents,
			&expense.SpentAt,
			&expense.CreatedAt,
		); err != nil {
			return nil, err
		}

		expenses = append(expenses, &expense)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return expenses, nil
}
