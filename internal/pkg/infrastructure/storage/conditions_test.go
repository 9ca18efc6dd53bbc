package storage

import (
	"testing"

	"github.com/matryer/is"
)

func condition(conditions ...ConditionFunc) *Condition {
	c := &Condition{}
	for _, cond := range conditions {
		c = cond(c)
	}
	return c
}

func TestEmptyConditionMatchesEverything(t *testing.T) {
	is := is.New(t)

	c := condition()

	is.Equal(c.Where(), "TRUE")
	is.Equal(len(c.NamedArgs()), 0)
}

func TestWhereCombinesConditions(t *testing.T) {
	is := is.New(t)

	c := condition(WithServerID("srv-001"), WithResolved(false))

	is.Equal(c.Where(), "server_id = @server_id AND resolved_at IS NULL")

	args := c.NamedArgs()
	is.Equal(args["server_id"], "srv-001")
	is.Equal(args["resolved"], false)
}

func TestTenantWithinAllowedTenantsNarrowsToTenant(t *testing.T) {
	is := is.New(t)

	c := condition(WithTenant("acme"), WithTenants([]string{"acme", "globex"}))

	is.Equal(c.Where(), "tenant = @tenant")
}

func TestTenantOutsideAllowedTenantsFallsBackToList(t *testing.T) {
	is := is.New(t)

	c := condition(WithTenant("other"), WithTenants([]string{"acme", "globex"}))

	is.Equal(c.Where(), "tenant = ANY(@tenants)")
}

func TestResolvedCondition(t *testing.T) {
	is := is.New(t)

	is.Equal(condition(WithResolved(true)).Where(), "resolved_at IS NOT NULL")
	is.Equal(condition(WithResolved(false)).Where(), "resolved_at IS NULL")
}

func TestSortDefaults(t *testing.T) {
	is := is.New(t)

	c := condition()

	is.Equal(c.SortBy(), "last_seen_at")
	is.Equal(c.SortOrder(), "DESC")
}

func TestSortByRejectsUnknownColumns(t *testing.T) {
	is := is.New(t)

	c := condition(WithSortBy("severity; DROP TABLE seen_alerts"))

	is.Equal(c.SortBy(), "last_seen_at")
}

func TestSortByMapsKnownColumns(t *testing.T) {
	is := is.New(t)

	is.Equal(condition(WithSortBy("first_seen")).SortBy(), "first_seen_at")
	is.Equal(condition(WithSortBy("severity"), WithSortDesc(false)).SortOrder(), "ASC")
}

func TestOffsetLimit(t *testing.T) {
	is := is.New(t)

	is.Equal(condition().OffsetLimit(), "")
	is.Equal(condition(WithOffset(20), WithLimit(10)).OffsetLimit(), "OFFSET 20 LIMIT 10 ")
	is.Equal(condition().Offset(), 0)
	is.Equal(condition().Limit(), 100)
}
