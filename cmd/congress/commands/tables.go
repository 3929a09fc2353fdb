package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/congress-client/internal/constants"
	"github.com/fivetwenty-io/congress-client/pkg/congress"
)

func billLabel(billType fmt.Stringer, number string) string {
	return strings.ToUpper(billType.String()) + " " + number
}

var billSummaryTable = itemTable[congress.BillSummary]{
	header: []string{"Congress", "Bill", "Title", "Latest Action", "Action Text", "Updated"},
	row: func(bill congress.BillSummary) []string {
		actionDate, actionText := formatLatestAction(bill.LatestAction)

		return []string{
			formatCount(bill.Congress),
			billLabel(bill.Type, bill.Number),
			truncate(bill.Title, constants.TitleDisplayLength),
			actionDate,
			actionText,
			formatDate(&bill.UpdateDate),
		}
	},
}

var actionTable = itemTable[congress.Action]{
	header: []string{"Date", "Type", "Code", "Text"},
	row: func(action congress.Action) []string {
		return []string{
			formatDate(&action.ActionDate),
			string(action.Type),
			action.ActionCode,
			truncate(action.Text, constants.TextDisplayLength),
		}
	},
}

var amendmentSummaryTable = itemTable[congress.AmendmentSummary]{
	header: []string{"Congress", "Amendment", "Purpose", "Latest Action", "Updated"},
	row: func(amendment congress.AmendmentSummary) []string {
		actionDate, _ := formatLatestAction(amendment.LatestAction)

		purpose := amendment.Purpose
		if purpose == "" {
			purpose = amendment.Description
		}

		return []string{
			formatCount(amendment.Congress),
			billLabel(amendment.Type, amendment.Number),
			truncate(purpose, constants.TitleDisplayLength),
			actionDate,
			formatDate(amendment.UpdateDate),
		}
	},
}

var committeeTable = itemTable[congress.Committee]{
	header: []string{"Name", "Chamber", "Code", "Activities"},
	row: func(committee congress.Committee) []string {
		activities := make([]string, 0, len(committee.Activities))
		for _, activity := range committee.Activities {
			activities = append(activities, activity.Name)
		}

		return []string{
			committee.Name,
			committee.Chamber.String(),
			committee.SystemCode,
			strings.Join(activities, ", "),
		}
	},
}

var cosponsorTable = itemTable[congress.Cosponsor]{
	header: []string{"Bioguide ID", "Name", "Party", "State", "Original", "Since"},
	row: func(cosponsor congress.Cosponsor) []string {
		return []string{
			cosponsor.BioguideID,
			cosponsor.FullName,
			cosponsor.Party,
			cosponsor.State,
			strconv.FormatBool(cosponsor.IsOriginalCosponsor),
			formatDate(&cosponsor.SponsorshipDate),
		}
	},
}

var relatedBillTable = itemTable[congress.RelatedBill]{
	header: []string{"Congress", "Bill", "Title", "Relationship"},
	row: func(related congress.RelatedBill) []string {
		relationships := make([]string, 0, len(related.RelationshipDetails))
		for _, detail := range related.RelationshipDetails {
			relationships = append(relationships, detail.Type)
		}

		return []string{
			formatCount(related.Congress),
			billLabel(related.Type, formatCount(related.Number)),
			truncate(related.Title, constants.TitleDisplayLength),
			strings.Join(relationships, ", "),
		}
	},
}

var subjectTable = itemTable[congress.LegislativeSubject]{
	header: []string{"Subject", "Updated"},
	row: func(subject congress.LegislativeSubject) []string {
		return []string{subject.Name, formatDate(subject.UpdateDate)}
	},
}

var summaryTable = itemTable[congress.Summary]{
	header: []string{"Bill", "Version", "Action Date", "Action", "Updated"},
	row: func(summary congress.Summary) []string {
		bill := notReported
		if summary.Bill != nil {
			bill = formatCount(summary.Bill.Congress) + " " + billLabel(summary.Bill.Type, summary.Bill.Number)
		}

		return []string{
			bill,
			summary.VersionCode,
			formatDate(&summary.ActionDate),
			truncate(summary.ActionDesc, constants.TitleDisplayLength),
			formatDate(&summary.UpdateDate),
		}
	},
}

var textVersionTable = itemTable[congress.TextVersion]{
	header: []string{"Type", "Date", "Formats"},
	row: func(version congress.TextVersion) []string {
		formats := make([]string, 0, len(version.Formats))
		for _, format := range version.Formats {
			formats = append(formats, format.Type)
		}

		return []string{version.Type, formatDate(version.Date), strings.Join(formats, ", ")}
	},
}

var titleTable = itemTable[congress.Title]{
	header: []string{"Type", "Title"},
	row: func(title congress.Title) []string {
		return []string{title.TitleType, truncate(title.Title, constants.TextDisplayLength)}
	},
}

var memberSummaryTable = itemTable[congress.MemberSummary]{
	header: []string{"Bioguide ID", "Name", "Party", "State", "District"},
	row: func(member congress.MemberSummary) []string {
		return []string{
			member.BioguideID,
			member.Name,
			member.PartyName,
			member.State,
			formatDistrict(member.District),
		}
	},
}

var legislationTable = itemTable[congress.LegislationItem]{
	header: []string{"Congress", "Measure", "Title", "Introduced"},
	row: func(item congress.LegislationItem) []string {
		measure := strings.ToUpper(item.Type) + " " + item.Number
		if item.AmendmentNumber != "" {
			measure = "Amendment " + item.AmendmentNumber
		}

		return []string{
			formatCount(item.Congress),
			measure,
			truncate(item.Title, constants.TitleDisplayLength),
			formatDate(&item.IntroducedDate),
		}
	},
}

var congressTable = itemTable[congress.CongressInfo]{
	header: []string{"Number", "Name", "Years", "Sessions"},
	row: func(info congress.CongressInfo) []string {
		return []string{
			formatCount(info.Number),
			info.Name,
			info.StartYear + "-" + info.EndYear,
			strconv.Itoa(len(info.Sessions)),
		}
	},
}

func formatDistrict(district *uint32) string {
	if district == nil {
		return notReported
	}

	return formatCount(*district)
}

func amendedBillLabel(bill *congress.AmendedBill) string {
	return formatCount(bill.Congress) + " " + billLabel(bill.Type, bill.Number)
}
