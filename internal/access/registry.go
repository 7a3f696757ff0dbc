package access

import (
	"stroydoc/internal/models"
	"stroydoc/internal/schema"
)

// Матрица доступа: смотреть может любая роль, редактирование — по службам.
// Наборы ролей — неизменяемая конфигурация, из кода наружу не редактируются.
var (
	allView = roleSet(models.AllRoles()...)

	estimateEdit   = roleSet(models.RoleSS, models.RoleMgr)
	supplyEdit     = roleSet(models.RoleSZP, models.RoleMgr)
	mechanicsEdit  = roleSet(models.RoleSM, models.RoleMgr)
	scheduleEdit   = roleSet(models.RoleTS, models.RoleMgr, models.RolePS, models.RoleCust)
	personnelEdit  = roleSet(models.RolePS, models.RoleMgr)
	managementEdit = roleSet(models.RoleMgr)
)

// Categories — все девять разделов в порядке показа на дашборде.
var Categories = []*Category{
	{
		Slug:     "estimates",
		Singular: "estimate",
		Title:    "Сметная документация",
		Table:    "psd.estimate_documentation",
		PK:       "estimate_id",
		Search:   [2]string{"work_expense_name", "price_code_resource_codes"},
		Fields: []schema.Field{
			{Name: "price_code", Column: "price_code_resource_codes", Label: "Код ресурса", Kind: schema.Text, Required: true, MaxLen: 100},
			{Name: "name", Column: "work_expense_name", Label: "Наименование работ", Kind: schema.Text, Required: true, MaxLen: 300},
			{Name: "unit", Column: "unit_of_measurement", Label: "Ед. изм.", Kind: schema.Text, Required: true, MaxLen: 50},
			{Name: "quantity", Column: "quantity", Label: "Количество", Kind: schema.Decimal, Required: true},
			{Name: "price", Column: "unit_price_rub", Label: "Цена за единицу, руб.", Kind: schema.Decimal, Required: true},
			{Name: "adjust", Column: "adjustment_coefficients", Label: "Поправочные коэффициенты", Kind: schema.Text},
			{Name: "winter", Column: "winter_increase_coefficients", Label: "Коэффициенты зимних удорожаний", Kind: schema.Text},
			{Name: "base", Column: "total_base_cost_rub", Label: "Итого в базисных ценах, руб.", Kind: schema.Decimal, Required: true},
			{Name: "indices", Column: "recalc_indices_standards", Label: "Индексы пересчёта", Kind: schema.Text},
			{Name: "total", Column: "total_current_cost_rub", Label: "Итого в текущих ценах, руб.", Kind: schema.Decimal, Required: true},
		},
		viewRoles: allView,
		editRoles: estimateEdit,
	},
	{
		Slug:     "materials",
		Singular: "material",
		Title:    "Спецификация материалов и оборудования",
		Table:    "psd.main_materials_equipment",
		PK:       "material_equipment_id",
		Search:   [2]string{"name_technical_specification", "type_brand_size"},
		Fields: []schema.Field{
			{Name: "estimate_id", Column: "estimate_id", Label: "Смета", Kind: schema.Reference, Required: true},
			{Name: "name", Column: "name_technical_specification", Label: "Тех. спецификация", Kind: schema.Text, Required: true, MaxLen: 300},
			{Name: "type", Column: "type_brand_size", Label: "Тип/Марка/Размер", Kind: schema.Text, Required: true, MaxLen: 100},
			{Name: "unit", Column: "unit_of_measurement", Label: "Ед. изм.", Kind: schema.Text, Required: true, MaxLen: 50},
			{Name: "quantity", Column: "quantity", Label: "Количество", Kind: schema.Decimal, Required: true},
			{Name: "location", Column: "installation_location_method", Label: "Место и способ установки", Kind: schema.Text, Required: true},
		},
		viewRoles: allView,
		editRoles: supplyEdit,
	},
	{
		Slug:     "materials_ref",
		Singular: "materials_ref",
		Title:    "Справочник материалов и оборудования",
		Table:    "materials_equipment",
		PK:       "material_equipment_id",
		Search:   [2]string{"name", "supplier"},
		Fields: []schema.Field{
			{Name: "name", Column: "name", Label: "Наименование", Kind: schema.Text, Required: true, MaxLen: 300},
			{Name: "type_brand_size", Column: "type_brand_size", Label: "Тип/Марка/Размер", Kind: schema.Text, Required: true, MaxLen: 100},
			{Name: "unit_of_measurement", Column: "unit_of_measurement", Label: "Ед. изм.", Kind: schema.Text, Required: true, MaxLen: 50},
			{Name: "quantity", Column: "quantity", Label: "Количество", Kind: schema.Decimal, Required: true},
			{Name: "supplier", Column: "supplier", Label: "Поставщик", Kind: schema.Text, MaxLen: 200},
			{Name: "unit_cost_rub", Column: "unit_cost_rub", Label: "Цена за единицу, руб.", Kind: schema.Decimal},
			{Name: "total_cost_rub", Column: "total_cost_rub", Label: "Стоимость, руб.", Kind: schema.Decimal},
			{Name: "storage_location", Column: "storage_location", Label: "Место хранения", Kind: schema.Text, MaxLen: 200},
		},
		viewRoles: allView,
		editRoles: supplyEdit,
	},
	{
		Slug:     "mechanisms",
		Singular: "mechanism",
		Title:    "Ведомость основных механизмов",
		Table:    "psd.main_mechanisms",
		PK:       "mechanism_id",
		Search:   [2]string{"mechanism_name", "location"},
		Fields: []schema.Field{
			{Name: "estimate_id", Column: "estimate_id", Label: "Смета", Kind: schema.Reference, Required: true},
			{Name: "name", Column: "mechanism_name", Label: "Название механизма", Kind: schema.Text, Required: true, MaxLen: 300},
			{Name: "type", Column: "type_brand_load_capacity", Label: "Тип/Марка/Грузоподъёмность", Kind: schema.Text, Required: true, MaxLen: 100},
			{Name: "quantity", Column: "quantity", Label: "Количество", Kind: schema.Int, Required: true},
			{Name: "location", Column: "location", Label: "Локация", Kind: schema.Text, Required: true, MaxLen: 200},
		},
		viewRoles: allView,
		editRoles: mechanicsEdit,
	},
	{
		Slug:     "mechanisms_ref",
		Singular: "mechanisms_ref",
		Title:    "Справочник механизмов",
		Table:    "mechanisms",
		PK:       "mechanism_id",
		Search:   [2]string{"mechanism_name", "type_brand_load_capacity"},
		Fields: []schema.Field{
			{Name: "mechanism_name", Column: "mechanism_name", Label: "Название механизма", Kind: schema.Text, Required: true, MaxLen: 300},
			{Name: "type_brand_load_capacity", Column: "type_brand_load_capacity", Label: "Тип/Марка/Грузоподъёмность", Kind: schema.Text, Required: true, MaxLen: 100},
			{Name: "stock_quantity", Column: "stock_quantity", Label: "Количество на складе", Kind: schema.Int, Required: true},
			{Name: "storage_location", Column: "storage_location", Label: "Место хранения", Kind: schema.Text, MaxLen: 200},
			{Name: "site_quantity", Column: "site_quantity", Label: "Количество на объекте", Kind: schema.Int},
			{Name: "stock_remaining", Column: "stock_remaining", Label: "Остаток на складе", Kind: schema.Int},
		},
		viewRoles: allView,
		editRoles: mechanicsEdit,
	},
	{
		Slug:     "work_volumes",
		Singular: "work_volume",
		Title:    "График строительства",
		Table:    "psd.work_volumes",
		PK:       "work_id",
		Search:   [2]string{"work_name", "notes"},
		Fields: []schema.Field{
			{Name: "name", Column: "work_name", Label: "Наименование работы", Kind: schema.Text, Required: true, MaxLen: 300},
			{Name: "unit", Column: "unit_of_measurement", Label: "Ед. изм.", Kind: schema.Text, Required: true, MaxLen: 50},
			{Name: "quantity", Column: "quantity", Label: "Количество", Kind: schema.Decimal, Required: true},
			{Name: "notes", Column: "notes", Label: "Примечания", Kind: schema.Text, MaxLen: 1000},
		},
		viewRoles: allView,
		editRoles: scheduleEdit,
	},
	{
		Slug:     "builders_specialists",
		Singular: "builder",
		Title:    "Строители и специалисты",
		Table:    "builders_specialists",
		PK:       "specialist_id",
		Search:   [2]string{"full_name", "position_specialty"},
		Fields: []schema.Field{
			{Name: "full_name", Column: "full_name", Label: "ФИО", Kind: schema.Text, Required: true, MaxLen: 300},
			{Name: "position", Column: "position_specialty", Label: "Специальность", Kind: schema.Text, Required: true, MaxLen: 100},
			{Name: "experience", Column: "experience_years", Label: "Опыт (лет)", Kind: schema.Int, Required: true},
			{Name: "section", Column: "section", Label: "Участок", Kind: schema.Text, Required: true, MaxLen: 100},
			{Name: "salary", Column: "salary", Label: "Зарплата", Kind: schema.Decimal, Required: true},
		},
		viewRoles: allView,
		editRoles: personnelEdit,
	},
	{
		Slug:     "itr",
		Singular: "itr",
		Title:    "ИТР",
		Table:    "itr",
		PK:       "worker_id",
		Search:   [2]string{"full_name", "position"},
		Fields: []schema.Field{
			{Name: "full_name", Column: "full_name", Label: "ФИО", Kind: schema.Text, Required: true, MaxLen: 300},
			{Name: "position", Column: "position", Label: "Должность", Kind: schema.Text, Required: true, MaxLen: 100},
			{Name: "experience", Column: "experience_years", Label: "Опыт (лет)", Kind: schema.Int, Required: true},
			{Name: "section", Column: "section", Label: "Секция", Kind: schema.Text, Required: true, MaxLen: 100},
			{Name: "salary", Column: "salary", Label: "Зарплата", Kind: schema.Decimal, Required: true},
		},
		viewRoles: allView,
		editRoles: personnelEdit,
	},
	{
		Slug:     "aup",
		Singular: "aup",
		Title:    "АУП",
		Table:    "aup",
		PK:       "staff_id",
		Search:   [2]string{"full_name", "position"},
		Fields: []schema.Field{
			{Name: "full_name", Column: "full_name", Label: "ФИО", Kind: schema.Text, Required: true, MaxLen: 300},
			{Name: "position", Column: "position", Label: "Должность", Kind: schema.Text, Required: true, MaxLen: 100},
			{Name: "experience", Column: "experience_years", Label: "Опыт (лет)", Kind: schema.Int, Required: true},
			{Name: "section", Column: "section", Label: "Секция", Kind: schema.Text, Required: true, MaxLen: 100},
			{Name: "salary", Column: "salary", Label: "Зарплата", Kind: schema.Decimal, Required: true},
		},
		viewRoles: allView,
		editRoles: managementEdit,
	},
}
