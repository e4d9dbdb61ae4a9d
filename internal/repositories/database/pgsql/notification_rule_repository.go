package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/szabol/damage_report_app/internal/apperrors"
	"github.com/szabol/damage_report_app/internal/core/domain"
	portsrepo "github.com/szabol/damage_report_app/internal/core/ports/repositories"
	"github.com/szabol/damage_report_app/internal/models"
	"github.com/szabol/damage_report_app/internal/utils/mapping"
)

type PgxNotificationRuleRepository struct {
	BaseRepository
}

func newPgxNotificationRuleRepository(pool *pgxpool.Pool) portsrepo.NotificationRuleRepositoryFacade {
	return &PgxNotificationRuleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NotificationRuleRepositoryFacade = (*PgxNotificationRuleRepository)(nil)

const ruleColumns = `rule_id, name, event, status_id, sub_status_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanRule(row pgx.Row) (*models.NotificationRule, error) {
	var m models.NotificationRule
	err := row.Scan(
		&m.RuleID, &m.Name, &m.Event, &m.StatusID, &m.SubStatusID, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// findRecipientsByRuleIDs loads the recipient rows of a set of rules in one
// query, grouped by rule.
func (r *PgxNotificationRuleRepository) findRecipientsByRuleIDs(ctx context.Context, ruleIDs []string) (map[string][]models.NotificationRuleRecipient, error) {
	if len(ruleIDs) == 0 {
		return map[string][]models.NotificationRuleRecipient{}, nil
	}
	query := `
		SELECT recipient_id, rule_id, type, value, sort_order
		FROM notification_rule_recipients
		WHERE rule_id = ANY($1)
		ORDER BY rule_id, sort_order ASC;
	`
	rows, err := r.Pool.Query(ctx, query, ruleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list rule recipients: %w", err)
	}
	defer rows.Close()

	byRule := make(map[string][]models.NotificationRuleRecipient, len(ruleIDs))
	for rows.Next() {
		var m models.NotificationRuleRecipient
		if err := rows.Scan(&m.RecipientID, &m.RuleID, &m.Type, &m.Value, &m.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan rule recipient row: %w", err)
		}
		byRule[m.RuleID] = append(byRule[m.RuleID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rule recipient rows: %w", err)
	}
	return byRule, nil
}

func (r *PgxNotificationRuleRepository) listRulesWhere(ctx context.Context, where string, args ...interface{}) ([]domain.NotificationRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM notification_rules` + where + ` ORDER BY name ASC;`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification rules: %w", err)
	}
	defer rows.Close()

	ruleModels := []models.NotificationRule{}
	for rows.Next() {
		m, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification rule row: %w", err)
		}
		ruleModels = append(ruleModels, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notification rule rows: %w", err)
	}

	ruleIDs := make([]string, len(ruleModels))
	for i, m := range ruleModels {
		ruleIDs[i] = m.RuleID
	}
	recipients, err := r.findRecipientsByRuleIDs(ctx, ruleIDs)
	if err != nil {
		return nil, err
	}

	rules := make([]domain.NotificationRule, len(ruleModels))
	for i, m := range ruleModels {
		rules[i] = mapping.ToDomainNotificationRule(m, recipients[m.RuleID])
	}
	return rules, nil
}

// FindActiveRulesByEvent returns all active rules for an event with their
// recipients populated.
func (r *PgxNotificationRuleRepository) FindActiveRulesByEvent(ctx context.Context, event domain.EventName) ([]domain.NotificationRule, error) {
	return r.listRulesWhere(ctx, ` WHERE event = $1 AND is_active = TRUE`, string(event))
}

// ListRules returns every rule, active or not.
func (r *PgxNotificationRuleRepository) ListRules(ctx context.Context) ([]domain.NotificationRule, error) {
	return r.listRulesWhere(ctx, ``)
}

// FindRuleByID retrieves a single rule with its recipients.
func (r *PgxNotificationRuleRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.NotificationRule, error) {
	m, err := scanRule(r.Pool.QueryRow(ctx, `SELECT `+ruleColumns+` FROM notification_rules WHERE rule_id = $1;`, ruleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("notification rule %s: %w", ruleID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find notification rule %s: %w", ruleID, err)
	}

	recipients, err := r.findRecipientsByRuleIDs(ctx, []string{ruleID})
	if err != nil {
		return nil, err
	}
	rule := mapping.ToDomainNotificationRule(*m, recipients[ruleID])
	return &rule, nil
}

func insertRecipients(ctx context.Context, tx pgx.Tx, recipients []domain.RecipientDescriptor) error {
	if len(recipients) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO notification_rule_recipients (recipient_id, rule_id, type, value, sort_order)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, recipient := range recipients {
		m := mapping.ToModelRecipientDescriptor(recipient)
		batch.Queue(query, m.RecipientID, m.RuleID, m.Type, m.Value, m.SortOrder)
	}
	br := tx.SendBatch(ctx, batch)
	for range recipients {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert rule recipient: %w", err)
		}
	}
	return br.Close()
}

// SaveRule inserts a rule and its recipients in one transaction.
func (r *PgxNotificationRuleRepository) SaveRule(ctx context.Context, rule domain.NotificationRule) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelNotificationRule(rule)
	query := `
		INSERT INTO notification_rules (` + ruleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		m.RuleID, m.Name, m.Event, m.StatusID, m.SubStatusID, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification rule %s: %w", m.RuleID, err)
	}

	if err := insertRecipients(ctx, tx, rule.Recipients); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateRule replaces the rule's fields and its whole recipient list in one
// transaction.
func (r *PgxNotificationRuleRepository) UpdateRule(ctx context.Context, rule domain.NotificationRule) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelNotificationRule(rule)
	query := `
		UPDATE notification_rules SET
			name = $2, event = $3, status_id = $4, sub_status_id = $5, is_active = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE rule_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.RuleID, m.Name, m.Event, m.StatusID, m.SubStatusID, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update notification rule %s: %w", m.RuleID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification rule %s: %w", m.RuleID, apperrors.ErrNotFound)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM notification_rule_recipients WHERE rule_id = $1;`, m.RuleID); err != nil {
		return fmt.Errorf("failed to clear recipients of rule %s: %w", m.RuleID, err)
	}
	if err := insertRecipients(ctx, tx, rule.Recipients); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DeleteRule removes a rule and its recipients.
func (r *PgxNotificationRuleRepository) DeleteRule(ctx context.Context, ruleID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM notification_rule_recipients WHERE rule_id = $1;`, ruleID); err != nil {
		return fmt.Errorf("failed to delete recipients of rule %s: %w", ruleID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM notification_rules WHERE rule_id = $1;`, ruleID)
	if err != nil {
		return fmt.Errorf("failed to delete notification rule %s: %w", ruleID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification rule %s: %w", ruleID, apperrors.ErrNotFound)
	}
	return r.Commit(ctx, tx)
}
