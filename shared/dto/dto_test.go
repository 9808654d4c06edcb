package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hostel/shared/constant"
	"hostel/shared/dto"
	"hostel/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "student-1",
		ModifiedBy: "admin-1",
	})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "student-1", metadata.CreatedBy)
	assert.Equal(t, "admin-1", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=price&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "price", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid numbers fall back to defaults",
			query:          "page=-1&limit=abc",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "unknown sort direction ignored",
			query:    "sort_by=price&sort_dir=sideways",
			expected: dto.QueryParams{SortBy: "price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/rooms?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name   string
		filter dto.Filter
		where  string
		args   map[string]any
	}{
		{
			name:   "eq with table",
			filter: dto.Eq("rooms", "id", "r1"),
			where:  "rooms.id = :id",
			args:   map[string]any{"id": "r1"},
		},
		{
			name:   "arg name override",
			filter: dto.Filter{Field: "status", ArgName: "current_status", Value: "pending", Operator: dto.FilterOperatorEq},
			where:  "status = :current_status",
			args:   map[string]any{"current_status": "pending"},
		},
		{
			name:   "greater",
			filter: dto.Filter{Field: "available_seats", Value: 0, Operator: dto.FilterOperatorGreater},
			where:  "available_seats > :available_seats",
			args:   map[string]any{"available_seats": 0},
		},
		{
			name:   "less",
			filter: dto.Filter{Field: "payment_date", Value: "t", Operator: dto.FilterOperatorLess},
			where:  "payment_date < :payment_date",
			args:   map[string]any{"payment_date": "t"},
		},
		{
			name:   "in slice",
			filter: dto.Filter{Field: "location", Value: []string{"BH1", "BH2"}, Operator: dto.FilterOperatorIn},
			where:  "location IN (:location_0, :location_1) ",
			args:   map[string]any{"location_0": "BH1", "location_1": "BH2"},
		},
		{
			name:   "is null",
			filter: dto.Filter{Field: "room_id", Operator: dto.FilterIsNull, Table: "students"},
			where:  "students.room_id IS NULL",
			args:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.And(
		dto.Eq("payments", "student_id", "s1"),
		dto.Or(
			dto.Eq("payments", "status", "pending"),
			dto.Filter{Table: "payments", Field: "status", ArgName: "status_failed", Value: "failed", Operator: dto.FilterOperatorEq},
		),
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(payments.student_id = :student_id AND (payments.status = :status OR payments.status = :status_failed))", where)
	assert.Equal(t, map[string]any{"student_id": "s1", "status": "pending", "status_failed": "failed"}, args)

	none := dto.And()
	empty, emptyArgs := none.GetWhereClause()
	assert.Empty(t, empty)
	assert.Empty(t, emptyArgs)
}
