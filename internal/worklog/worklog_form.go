package worklog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"
	worklogerrors "github.com/code-hero23/peopledesk-sub002/internal/worklog/errors"
)

const (
	DesignationCRE = "CRE"
	DesignationFA  = "FA"
	DesignationLA  = "LA"
	DesignationAE  = "AE"
)

// commonFields boleh dipakai semua designation.
var commonFields = []string{"tasks", "hours", "remarks", "projectName", "projectId"}

// formFields: field khusus per designation. Designation lain hanya memakai commonFields.
var formFields = map[string][]string{
	DesignationCRE: {
		"cre_totalCalls", "cre_showroomVisits", "cre_fqSent", "cre_orders", "cre_proposals",
		"cre_callBreakdown",
	},
	DesignationFA: {
		"fa_calls", "fa_designPending", "fa_designPendingClients", "fa_quotePending",
		"fa_quotePendingClients", "fa_initialQuoteRn", "fa_revisedQuoteRn", "fa_showroomVisits",
		"fa_showroomVisitClients", "fa_onlineDiscussion", "fa_onlineDiscussionClients",
		"fa_siteVisits", "fa_loadingDiscussion", "fa_bookingFreezed", "fa_bookingFreezedClients",
	},
	DesignationLA: {
		"clientName", "site", "process", "imageCount", "startTime", "endTime", "completedImages",
		"pendingImages", "la_number", "la_mailId", "la_projectLocation", "la_freezingAmount",
		"la_variant", "la_projectValue", "la_woodwork", "la_addOns", "la_cpCode", "la_source",
		"la_fa", "la_referalBonus", "la_siteStatus", "la_specialNote", "la_requirements",
		"la_colours", "la_onlineMeeting", "la_showroomMeeting", "la_measurements",
	},
	DesignationAE: {
		"ae_siteLocation", "ae_gpsCoordinates", "ae_siteStatus", "ae_visitType", "ae_workStage",
		"ae_tasksCompleted", "ae_measurements", "ae_itemsInstalled", "ae_issuesRaised",
		"ae_issuesResolved", "ae_hasIssues", "ae_issueType", "ae_issueDescription",
		"ae_nextVisitRequired", "ae_nextVisitDate", "ae_plannedWork", "ae_clientMet",
		"ae_clientFeedback", "ae_photos",
	},
}

// FormFields mengembalikan nama field yang sah untuk designation, terurut.
func FormFields(designation string) []string {
	fields := append([]string{}, commonFields...)
	fields = append(fields, formFields[strings.ToUpper(designation)]...)
	sort.Strings(fields)
	return fields
}

func allowedSet(designation string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, f := range commonFields {
		set[f] = struct{}{}
	}
	for _, f := range formFields[strings.ToUpper(designation)] {
		set[f] = struct{}{}
	}
	return set
}

// ValidatePayload memastikan setiap baris payload hanya memakai field milik form designation.
// Payload boleh berupa satu objek atau list objek.
func ValidatePayload(designation string, raw []byte) error {
	rows, err := PayloadRows(raw)
	if err != nil {
		return err
	}

	allowed := allowedSet(designation)
	for i, row := range rows {
		var unknown []string
		for key := range row {
			if _, ok := allowed[key]; !ok {
				unknown = append(unknown, key)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return apperror.New(
				apperror.CodeInvalidInput,
				fmt.Sprintf("row %d: field %s not in %s form", i+1, strings.Join(unknown, ", "), formName(designation)),
				http.StatusBadRequest,
			)
		}
	}
	return nil
}

// PayloadRows memecah payload menjadi baris; satu objek dianggap satu baris.
func PayloadRows(raw []byte) ([]map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, worklogerrors.ErrInvalidPayload
	}

	switch trimmed[0] {
	case '{':
		var row map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &row); err != nil {
			return nil, worklogerrors.ErrInvalidPayload
		}
		return []map[string]json.RawMessage{row}, nil
	case '[':
		var rows []map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, worklogerrors.ErrInvalidPayload
		}
		return rows, nil
	default:
		return nil, worklogerrors.ErrInvalidPayload
	}
}

func validateMetrics(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return worklogerrors.ErrInvalidMetrics
	}
	return nil
}

func formName(designation string) string {
	d := strings.ToUpper(strings.TrimSpace(designation))
	if _, ok := formFields[d]; ok {
		return d
	}
	return "general"
}
