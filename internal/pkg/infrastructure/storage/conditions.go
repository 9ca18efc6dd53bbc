package storage

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	ServerID    string
	Fingerprint string

	Tenant  string
	Tenants []string

	Resolved *bool

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) SortBy() string {
	if c.sortBy == "" {
		return "last_seen_at"
	}
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "DESC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 100
	}
	return *c.limit
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.ServerID != "" {
		args["server_id"] = c.ServerID
	}
	if c.Fingerprint != "" {
		args["fingerprint"] = c.Fingerprint
	}
	if c.Tenant != "" {
		args["tenant"] = c.Tenant
	}
	if c.Tenants != nil {
		args["tenants"] = c.Tenants
	}
	if c.Resolved != nil {
		args["resolved"] = *c.Resolved
	}

	return args
}

func (c Condition) Where() string {
	where := []string{}

	if c.ServerID != "" {
		where = append(where, "server_id = @server_id")
	}

	if c.Fingerprint != "" {
		where = append(where, "fingerprint = @fingerprint")
	}

	if len(c.Tenant) > 0 && len(c.Tenants) > 0 && slices.Contains(c.Tenants, c.Tenant) {
		where = append(where, "tenant = @tenant")
	} else if len(c.Tenants) > 0 {
		where = append(where, "tenant = ANY(@tenants)")
	} else if c.Tenant != "" {
		where = append(where, "tenant = @tenant")
	}

	if c.Resolved != nil {
		if *c.Resolved {
			where = append(where, "resolved_at IS NOT NULL")
		} else {
			where = append(where, "resolved_at IS NULL")
		}
	}

	if len(where) == 0 {
		return "TRUE"
	}

	return strings.Join(where, " AND ")
}

func WithServerID(serverID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ServerID = serverID
		return c
	}
}

func WithFingerprint(fingerprint string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Fingerprint = fingerprint
		return c
	}
}

func WithTenant(tenant string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Tenant = tenant
		return c
	}
}

func WithTenants(tenants []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Tenants = tenants
		return c
	}
}

func WithResolved(resolved bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Resolved = &resolved
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		switch strings.ToLower(sortBy) {
		case "first_seen":
			c.sortBy = "first_seen_at"
		case "last_seen":
			c.sortBy = "last_seen_at"
		case "severity":
			c.sortBy = "severity"
		case "category":
			c.sortBy = "category"
		}
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

func (c Condition) OffsetLimit() string {
	offsetLimit := ""

	if c.offset != nil {
		offsetLimit += fmt.Sprintf("OFFSET %d ", *c.offset)
	}
	if c.limit != nil {
		offsetLimit += fmt.Sprintf("LIMIT %d ", *c.limit)
	}

	return offsetLimit
}
