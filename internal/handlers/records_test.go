package handlers_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEstimateForm() url.Values {
	return url.Values{
		"price_code": {"ФЕР01-01-001"},
		"name":       {"Разработка грунта"},
		"unit":       {"м3"},
		"quantity":   {"120.5"},
		"price":      {"1500.00"},
		"base":       {"180750.00"},
		"total":      {"199000.00"},
	}
}

func TestAddRecordAuthorized(t *testing.T) {
	e := newEnv(t)
	e.login(t, "mgr_user")

	resp := e.postForm(t, "/aup/add", url.Values{
		"full_name":  {"Иванов Иван Иванович"},
		"position":   {"Руководитель проекта"},
		"experience": {"12"},
		"section":    {"Участок 1"},
		"salary":     {"185000.50"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/aup", resp.Header.Get("Location"))

	require.Len(t, e.store.insertCalls, 1)
	call := e.store.insertCalls[0]
	assert.Equal(t, "aup", call.slug)
	assert.Equal(t, "Иванов Иван Иванович", call.rec["full_name"])
	assert.Equal(t, int64(12), call.rec["experience_years"])

	salary, ok := call.rec["salary"].(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, salary.Equal(decimal.RequireFromString("185000.50")))

	_, body := e.get(t, "/aup")
	assert.Contains(t, body, "Запись успешно добавлена.")
}

func TestAddRecordForbiddenRole(t *testing.T) {
	// Заказчик не входит в редакторов сметной документации
	e := newEnv(t)
	e.login(t, "cust_user")

	resp := e.postForm(t, "/estimate/add", validEstimateForm())
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.Empty(t, e.store.insertCalls, "вставка не должна выполняться")

	_, body := e.get(t, "/")
	assert.Contains(t, body, "Доступ запрещён")
}

func TestAddMissingField(t *testing.T) {
	e := newEnv(t)
	e.login(t, "ss_user")

	form := validEstimateForm()
	form.Del("unit")

	resp := e.postForm(t, "/estimate/add", form)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/estimates", resp.Header.Get("Location"))
	assert.Empty(t, e.store.insertCalls)

	_, body := e.get(t, "/estimates")
	assert.Contains(t, body, "Поле «unit» обязательно для заполнения.")
}

func TestAddNegativeQuantity(t *testing.T) {
	e := newEnv(t)
	e.login(t, "ss_user")

	form := validEstimateForm()
	form.Set("quantity", "-5")

	resp := e.postForm(t, "/estimate/add", form)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Empty(t, e.store.insertCalls)

	_, body := e.get(t, "/estimates")
	assert.Contains(t, body, "Количество не может быть отрицательным.")
}

func TestAddInvalidReference(t *testing.T) {
	e := newEnv(t)
	e.store.exists = false
	e.login(t, "szip_user")

	resp := e.postForm(t, "/material/add", url.Values{
		"estimate_id": {"99999"},
		"name":        {"Арматура А500С"},
		"type":        {"d12"},
		"unit":        {"т"},
		"quantity":    {"3.2"},
		"location":    {"Тоннель, свод"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/materials", resp.Header.Get("Location"))
	assert.Empty(t, e.store.insertCalls)

	_, body := e.get(t, "/materials")
	assert.Contains(t, body, "Сметы с ID=99999 не существует.")
}

func TestAddStorageErrorSurfaced(t *testing.T) {
	e := newEnv(t)
	e.store.insertErr = errors.New("duplicate key value violates unique constraint")
	e.login(t, "mgr_user")

	resp := e.postForm(t, "/aup/add", url.Values{
		"full_name":  {"Иванов И.И."},
		"position":   {"Директор"},
		"experience": {"20"},
		"section":    {"АУП"},
		"salary":     {"250000"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)

	_, body := e.get(t, "/aup")
	assert.Contains(t, body, "Ошибка при вставке: duplicate key value")
}

func TestDeleteRecord(t *testing.T) {
	e := newEnv(t)
	e.login(t, "ss_user")

	resp, _ := e.get(t, "/estimate/delete/5")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/estimates", resp.Header.Get("Location"))

	// повторное удаление — тоже успех
	resp, _ = e.get(t, "/estimate/delete/5")
	require.Equal(t, http.StatusFound, resp.StatusCode)

	assert.Equal(t, []int64{5, 5}, e.store.deleteCalls)

	_, body := e.get(t, "/estimates")
	assert.Contains(t, body, "Запись удалена.")
}

func TestDeleteForbiddenRole(t *testing.T) {
	// АУП редактирует только руководитель контракта
	e := newEnv(t)
	e.login(t, "ps_user")

	resp, _ := e.get(t, "/aup/delete/3")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.Empty(t, e.store.deleteCalls)
}

func TestDeleteBadID(t *testing.T) {
	e := newEnv(t)
	e.login(t, "ss_user")

	resp, _ := e.get(t, "/estimate/delete/abc")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Empty(t, e.store.deleteCalls)

	_, body := e.get(t, "/estimates")
	assert.Contains(t, body, "Некорректный ID записи.")
}

func TestListPassesSearchQuery(t *testing.T) {
	e := newEnv(t)
	e.store.rows = []map[string]any{
		{"estimate_id": int64(1), "work_expense_name": "Бетонирование обделки", "quantity": "12.5"},
	}
	e.login(t, "ps_user")

	resp, body := e.get(t, "/estimates?q=бетон")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "бетон", e.store.lastQuery)
	assert.Contains(t, body, "Бетонирование обделки")
}

func TestListHidesEditForViewer(t *testing.T) {
	// ТС видит сметы, но не редактирует их
	e := newEnv(t)
	e.login(t, "ts_user")

	resp, body := e.get(t, "/estimates")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, body, "/estimate/add")

	e.login(t, "ss_user")
	resp, body = e.get(t, "/estimates")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "/estimate/add")
}

func TestExportRoute(t *testing.T) {
	e := newEnv(t)
	e.store.rows = []map[string]any{
		{"staff_id": int64(1), "full_name": "Иванов И.И.", "position": "Директор",
			"experience_years": int64(20), "section": "АУП", "salary": []byte("250000.00")},
	}
	e.login(t, "cust_user")

	resp, body := e.get(t, "/aup/export")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `attachment; filename="aup.xlsx"`)
	assert.NotEmpty(t, body)
}
