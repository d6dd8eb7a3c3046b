package settings

import (
	"strconv"
	"strings"
	"time"

	settingserrors "github.com/code-hero23/peopledesk-sub002/internal/settings/errors"

	"github.com/google/uuid"
)

const (
	KeyPayrollCalculationMode  = "payrollCalculationMode"
	KeyGlobalShortageDeduction = "isGlobalShortageDeductionEnabled"
	KeySalaryDashboard         = "isSalaryDashboardEnabled"

	ModeAuto   = "AUTO"
	ModeManual = "MANUAL"
)

// Keys adalah daftar key yang dikenal, urut sesuai tampilan admin.
var Keys = []string{KeyPayrollCalculationMode, KeyGlobalShortageDeduction, KeySalaryDashboard}

var defaults = map[string]string{
	KeyPayrollCalculationMode:  ModeAuto,
	KeyGlobalShortageDeduction: "true",
	KeySalaryDashboard:         "true",
}

type GlobalSetting struct {
	Key       string     `gorm:"column:key;type:varchar(100);primaryKey"`
	Value     string     `gorm:"column:value;type:text;not null"`
	UpdatedBy *uuid.UUID `gorm:"column:updated_by;type:uuid"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (GlobalSetting) TableName() string {
	return "global_settings"
}

// Settings adalah bentuk bertipe dari tabel global_settings.
// Hanya struct ini yang dibaca oleh perhitungan payroll.
type Settings struct {
	PayrollMode              string `json:"payroll_calculation_mode"`
	ShortageDeductionEnabled bool   `json:"is_global_shortage_deduction_enabled"`
	SalaryDashboardEnabled   bool   `json:"is_salary_dashboard_enabled"`
}

func Default() Settings {
	return FromMap(nil)
}

func (s Settings) IsManual() bool {
	return s.PayrollMode == ModeManual
}

// FromMap membangun Settings dari pasangan key/value. Key yang kosong atau
// nilainya tidak valid jatuh ke default.
func FromMap(values map[string]string) Settings {
	get := func(key string) string {
		if v, ok := values[key]; ok {
			if normalized, err := Normalize(key, v); err == nil {
				return normalized
			}
		}
		return defaults[key]
	}

	return Settings{
		PayrollMode:              get(KeyPayrollCalculationMode),
		ShortageDeductionEnabled: get(KeyGlobalShortageDeduction) == "true",
		SalaryDashboardEnabled:   get(KeySalaryDashboard) == "true",
	}
}

// Normalize memvalidasi value untuk key dan mengembalikan bentuk kanoniknya.
func Normalize(key, value string) (string, error) {
	value = strings.TrimSpace(value)
	switch key {
	case KeyPayrollCalculationMode:
		mode := strings.ToUpper(value)
		if mode != ModeAuto && mode != ModeManual {
			return "", settingserrors.ErrInvalidValue
		}
		return mode, nil
	case KeyGlobalShortageDeduction, KeySalaryDashboard:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", settingserrors.ErrInvalidValue
		}
		return strconv.FormatBool(b), nil
	default:
		return "", settingserrors.ErrUnknownKey
	}
}

func IsKnownKey(key string) bool {
	_, ok := defaults[key]
	return ok
}
