package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"hostel/shared/constant"
	"hostel/shared/dto"
	"hostel/shared/timezone"
)

// Clearer is the part of the cache used to drop every key sharing a prefix.
type Clearer interface {
	Clear(ctx context.Context, pattern string) error
}

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
// Zero fields are skipped, pointer fields are dereferenced.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			field = field.Elem()
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins prefix and parts with ":".
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

// BuildCacheKeyWithQuery keys a cached list by a digest of its query, so two requests
// with the same params and filters share an entry.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filters any) string {
	raw, err := json.Marshal(struct {
		Params  dto.QueryParams `json:"params"`
		Filters any             `json:"filters"`
	}{params, filters})
	if err != nil {
		return BuildCacheKey(prefix, fmt.Sprintf("%v:%v", params, filters))
	}

	sum := sha256.Sum256(raw)

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches clears every key under the given prefixes. Failures are logged and
// skipped since a stale cache entry expires on its own.
func InvalidateCaches(ctx context.Context, cache Clearer, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := cache.Clear(ctx, prefix+"*"); err != nil {
			log.Warn().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
		}
	}
}

// Actor is the user recorded in created_by and modified_by. Calls made outside an
// authenticated request are attributed to the system.
func Actor(ctx context.Context) string {
	if user, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && user != constant.Empty {
		return user
	}

	return constant.ContextSystem
}
