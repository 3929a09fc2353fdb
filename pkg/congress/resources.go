package congress

// Bill Types

// BillSummary is a bill as it appears in list endpoints.
type BillSummary struct {
	Congress                uint32        `json:"congress"                          yaml:"congress"                          validate:"required"`
	LatestAction            *LatestAction `json:"latestAction,omitempty"            yaml:"latestAction,omitempty"`
	Number                  string        `json:"number"                            yaml:"number"                            validate:"required"`
	OriginChamber           Chamber       `json:"originChamber"                     yaml:"originChamber"`
	OriginChamberCode       ChamberCode   `json:"originChamberCode"                 yaml:"originChamberCode"`
	Title                   string        `json:"title"                             yaml:"title"`
	Type                    BillType      `json:"type"                              yaml:"type"                              validate:"required"`
	UpdateDate              Date          `json:"updateDate"                        yaml:"updateDate"`
	UpdateDateIncludingText *Date         `json:"updateDateIncludingText,omitempty" yaml:"updateDateIncludingText,omitempty"`
	URL                     string        `json:"url"                               yaml:"url"`
}

// BillsResponse is a page of bills.
type BillsResponse struct {
	Bills []BillSummary `json:"bills" yaml:"bills" validate:"dive"`
	Paged `yaml:",inline"`
}

// Items returns the bills on this page.
func (r *BillsResponse) Items() []BillSummary { return r.Bills }

// Bill is the full record of a single bill.
type Bill struct {
	Actions                              CountRef          `json:"actions"                                        yaml:"actions"`
	Amendments                           *CountRef         `json:"amendments,omitempty"                           yaml:"amendments,omitempty"`
	CBOCostEstimates                     []CBOCostEstimate `json:"cboCostEstimates,omitempty"                     yaml:"cboCostEstimates,omitempty"`
	CommitteeReports                     []CommitteeReport `json:"committeeReports,omitempty"                     yaml:"committeeReports,omitempty"`
	Committees                           CountRef          `json:"committees"                                     yaml:"committees"`
	Congress                             uint32            `json:"congress"                                       yaml:"congress"                                       validate:"required"`
	ConstitutionalAuthorityStatementText string            `json:"constitutionalAuthorityStatementText,omitempty" yaml:"constitutionalAuthorityStatementText,omitempty"`
	Cosponsors                           *CosponsorsRef    `json:"cosponsors,omitempty"                           yaml:"cosponsors,omitempty"`
	IntroducedDate                       Date              `json:"introducedDate"                                 yaml:"introducedDate"`
	LatestAction                         *LatestAction     `json:"latestAction,omitempty"                         yaml:"latestAction,omitempty"`
	Laws                                 []Law             `json:"laws,omitempty"                                 yaml:"laws,omitempty"`
	Number                               string            `json:"number"                                         yaml:"number"                                         validate:"required"`
	OriginChamber                        Chamber           `json:"originChamber"                                  yaml:"originChamber"`
	OriginChamberCode                    ChamberCode       `json:"originChamberCode,omitempty"                    yaml:"originChamberCode,omitempty"`
	PolicyArea                           *PolicyArea       `json:"policyArea,omitempty"                           yaml:"policyArea,omitempty"`
	RelatedBills                         *CountRef         `json:"relatedBills,omitempty"                         yaml:"relatedBills,omitempty"`
	Sponsors                             []Sponsor         `json:"sponsors,omitempty"                             yaml:"sponsors,omitempty"                             validate:"dive"`
	Subjects                             *CountRef         `json:"subjects,omitempty"                             yaml:"subjects,omitempty"`
	Summaries                            *CountRef         `json:"summaries,omitempty"                            yaml:"summaries,omitempty"`
	TextVersions                         *CountRef         `json:"textVersions,omitempty"                         yaml:"textVersions,omitempty"`
	Title                                string            `json:"title"                                          yaml:"title"`
	Titles                               *CountRef         `json:"titles,omitempty"                               yaml:"titles,omitempty"`
	Type                                 BillType          `json:"type"                                           yaml:"type"                                           validate:"required"`
	UpdateDate                           Date              `json:"updateDate"                                     yaml:"updateDate"`
	UpdateDateIncludingText              *Date             `json:"updateDateIncludingText,omitempty"              yaml:"updateDateIncludingText,omitempty"`
}

// BillResponse wraps a single bill.
type BillResponse struct {
	Bill Bill `json:"bill" yaml:"bill"`
}

// Sponsor is the member who introduced a measure.
type Sponsor struct {
	BioguideID  string  `json:"bioguideId"            yaml:"bioguideId"            validate:"required"`
	District    *uint32 `json:"district,omitempty"    yaml:"district,omitempty"`
	FirstName   string  `json:"firstName"             yaml:"firstName"`
	FullName    string  `json:"fullName"              yaml:"fullName"`
	IsByRequest string  `json:"isByRequest,omitempty" yaml:"isByRequest,omitempty"`
	LastName    string  `json:"lastName"              yaml:"lastName"`
	MiddleName  string  `json:"middleName,omitempty"  yaml:"middleName,omitempty"`
	Party       string  `json:"party,omitempty"       yaml:"party,omitempty"`
	State       string  `json:"state,omitempty"       yaml:"state,omitempty"`
	URL         string  `json:"url"                   yaml:"url"`
}

// Law is a public or private law a bill became.
type Law struct {
	Number string `json:"number" yaml:"number"`
	Type   string `json:"type"   yaml:"type"`
}

// PolicyArea is the single policy area term assigned to a bill.
type PolicyArea struct {
	Name       string `json:"name"                 yaml:"name"`
	UpdateDate *Date  `json:"updateDate,omitempty" yaml:"updateDate,omitempty"`
}

// CBOCostEstimate links a Congressional Budget Office estimate.
type CBOCostEstimate struct {
	Description string `json:"description" yaml:"description"`
	PubDate     Date   `json:"pubDate"     yaml:"pubDate"`
	Title       string `json:"title"       yaml:"title"`
	URL         string `json:"url"         yaml:"url"`
}

// CommitteeReport links a committee report on a bill.
type CommitteeReport struct {
	Citation string `json:"citation" yaml:"citation"`
	URL      string `json:"url"      yaml:"url"`
}

// Action Types

// Action is a step in the legislative history of a bill or amendment.
type Action struct {
	ActionCode    string         `json:"actionCode,omitempty"    yaml:"actionCode,omitempty"`
	ActionDate    Date           `json:"actionDate"              yaml:"actionDate"`
	ActionTime    string         `json:"actionTime,omitempty"    yaml:"actionTime,omitempty"`
	Committees    []CommitteeRef `json:"committees,omitempty"    yaml:"committees,omitempty"`
	RecordedVotes []RecordedVote `json:"recordedVotes,omitempty" yaml:"recordedVotes,omitempty"`
	SourceSystem  *SourceSystem  `json:"sourceSystem,omitempty"  yaml:"sourceSystem,omitempty"`
	Text          string         `json:"text,omitempty"          yaml:"text,omitempty"`
	Type          ActionType     `json:"type,omitempty"          yaml:"type,omitempty"`
}

// SourceSystem names the system that recorded an action.
type SourceSystem struct {
	Code *uint32 `json:"code,omitempty" yaml:"code,omitempty"`
	Name string  `json:"name"           yaml:"name"`
}

// RecordedVote links a roll call vote taken on an action.
type RecordedVote struct {
	Chamber       Chamber `json:"chamber"       yaml:"chamber"`
	Congress      uint32  `json:"congress"      yaml:"congress"`
	Date          Date    `json:"date"          yaml:"date"`
	RollNumber    uint32  `json:"rollNumber"    yaml:"rollNumber"`
	SessionNumber uint32  `json:"sessionNumber" yaml:"sessionNumber"`
	URL           string  `json:"url"           yaml:"url"`
}

// CommitteeRef identifies a committee referenced by an action.
type CommitteeRef struct {
	Name       string `json:"name"       yaml:"name"`
	SystemCode string `json:"systemCode" yaml:"systemCode"`
	URL        string `json:"url"        yaml:"url"`
}

// ActionsResponse is a page of actions.
type ActionsResponse struct {
	Actions []Action `json:"actions" yaml:"actions" validate:"dive"`
	Paged   `yaml:",inline"`
}

// Items returns the actions on this page.
func (r *ActionsResponse) Items() []Action { return r.Actions }

// Amendment Types

// AmendmentSummary is an amendment as it appears in list endpoints.
type AmendmentSummary struct {
	Congress     uint32        `json:"congress"               yaml:"congress"               validate:"required"`
	Description  string        `json:"description,omitempty"  yaml:"description,omitempty"`
	LatestAction *LatestAction `json:"latestAction,omitempty" yaml:"latestAction,omitempty"`
	Number       string        `json:"number"                 yaml:"number"                 validate:"required"`
	Purpose      string        `json:"purpose,omitempty"      yaml:"purpose,omitempty"`
	Type         AmendmentType `json:"type"                   yaml:"type"                   validate:"required"`
	UpdateDate   *Date         `json:"updateDate,omitempty"   yaml:"updateDate,omitempty"`
	URL          string        `json:"url"                    yaml:"url"`
}

// AmendmentsResponse is a page of amendments.
type AmendmentsResponse struct {
	Amendments []AmendmentSummary `json:"amendments" yaml:"amendments" validate:"dive"`
	Paged      `yaml:",inline"`
}

// Items returns the amendments on this page.
func (r *AmendmentsResponse) Items() []AmendmentSummary { return r.Amendments }

// Amendment is the full record of a single amendment.
type Amendment struct {
	Actions               CountRef       `json:"actions"                         yaml:"actions"`
	AmendedBill           *AmendedBill   `json:"amendedBill,omitempty"           yaml:"amendedBill,omitempty"`
	AmendmentsToAmendment *CountRef      `json:"amendmentsToAmendment,omitempty" yaml:"amendmentsToAmendment,omitempty"`
	Chamber               Chamber        `json:"chamber"                         yaml:"chamber"`
	Congress              uint32         `json:"congress"                        yaml:"congress"                        validate:"required"`
	Cosponsors            *CosponsorsRef `json:"cosponsors,omitempty"            yaml:"cosponsors,omitempty"`
	LatestAction          *LatestAction  `json:"latestAction,omitempty"          yaml:"latestAction,omitempty"`
	Number                string         `json:"number"                          yaml:"number"                          validate:"required"`
	ProposedDate          *Date          `json:"proposedDate,omitempty"          yaml:"proposedDate,omitempty"`
	Purpose               string         `json:"purpose,omitempty"               yaml:"purpose,omitempty"`
	Sponsors              []Sponsor      `json:"sponsors,omitempty"              yaml:"sponsors,omitempty"              validate:"dive"`
	SubmittedDate         *Date          `json:"submittedDate,omitempty"         yaml:"submittedDate,omitempty"`
	Type                  AmendmentType  `json:"type"                            yaml:"type"                            validate:"required"`
	UpdateDate            Date           `json:"updateDate"                      yaml:"updateDate"`
}

// AmendmentResponse wraps a single amendment.
type AmendmentResponse struct {
	Amendment Amendment `json:"amendment" yaml:"amendment"`
}

// AmendedBill identifies the bill an amendment modifies.
type AmendedBill struct {
	Congress          uint32      `json:"congress"          yaml:"congress"`
	Number            string      `json:"number"            yaml:"number"`
	OriginChamber     Chamber     `json:"originChamber"     yaml:"originChamber"`
	OriginChamberCode ChamberCode `json:"originChamberCode" yaml:"originChamberCode"`
	Title             string      `json:"title"             yaml:"title"`
	Type              BillType    `json:"type"              yaml:"type"`
	URL               string      `json:"url"               yaml:"url"`
}

// Committee Types

// Committee is a committee a bill was referred to, with its activity on the bill.
type Committee struct {
	Activities []CommitteeActivity `json:"activities"         yaml:"activities"`
	Chamber    Chamber             `json:"chamber"            yaml:"chamber"`
	Name       string              `json:"name"               yaml:"name"               validate:"required"`
	SystemCode string              `json:"systemCode"         yaml:"systemCode"         validate:"required"`
	Type       string              `json:"type,omitempty"     yaml:"type,omitempty"`
	URL        string              `json:"url"                yaml:"url"`
}

// CommitteeActivity is a single committee step such as referral or markup.
type CommitteeActivity struct {
	Date Date   `json:"date" yaml:"date"`
	Name string `json:"name" yaml:"name"`
}

// CommitteesResponse is a page of committees.
type CommitteesResponse struct {
	Committees []Committee `json:"committees" yaml:"committees" validate:"dive"`
	Paged      `yaml:",inline"`
}

// Items returns the committees on this page.
func (r *CommitteesResponse) Items() []Committee { return r.Committees }

// Cosponsor Types

// Cosponsor is a member who cosponsored a bill or amendment.
type Cosponsor struct {
	BioguideID               string  `json:"bioguideId"                         yaml:"bioguideId"                         validate:"required"`
	District                 *uint32 `json:"district,omitempty"                 yaml:"district,omitempty"`
	FirstName                string  `json:"firstName"                          yaml:"firstName"`
	FullName                 string  `json:"fullName"                           yaml:"fullName"`
	IsOriginalCosponsor      bool    `json:"isOriginalCosponsor"                yaml:"isOriginalCosponsor"`
	LastName                 string  `json:"lastName"                           yaml:"lastName"`
	MiddleName               string  `json:"middleName,omitempty"               yaml:"middleName,omitempty"`
	Party                    string  `json:"party"                              yaml:"party"`
	SponsorshipDate          Date    `json:"sponsorshipDate"                    yaml:"sponsorshipDate"`
	SponsorshipWithdrawnDate *Date   `json:"sponsorshipWithdrawnDate,omitempty" yaml:"sponsorshipWithdrawnDate,omitempty"`
	State                    string  `json:"state,omitempty"                    yaml:"state,omitempty"`
	URL                      string  `json:"url"                                yaml:"url"`
}

// CosponsorsResponse is a page of cosponsors.
type CosponsorsResponse struct {
	Cosponsors []Cosponsor `json:"cosponsors" yaml:"cosponsors" validate:"dive"`
	Paged      `yaml:",inline"`
}

// Items returns the cosponsors on this page.
func (r *CosponsorsResponse) Items() []Cosponsor { return r.Cosponsors }

// Related Bill Types

// RelatedBill is a bill related to another by procedure or text.
type RelatedBill struct {
	Congress            uint32               `json:"congress"               yaml:"congress"               validate:"required"`
	LatestAction        *LatestAction        `json:"latestAction,omitempty" yaml:"latestAction,omitempty"`
	Number              uint32               `json:"number"                 yaml:"number"                 validate:"required"`
	RelationshipDetails []RelationshipDetail `json:"relationshipDetails"    yaml:"relationshipDetails"`
	Title               string               `json:"title"                  yaml:"title"`
	Type                BillType             `json:"type"                   yaml:"type"                   validate:"required"`
	URL                 string               `json:"url"                    yaml:"url"`
}

// RelationshipDetail states how and by whom a relationship was identified.
type RelationshipDetail struct {
	IdentifiedBy string `json:"identifiedBy" yaml:"identifiedBy"`
	Type         string `json:"type"         yaml:"type"`
}

// RelatedBillsResponse is a page of related bills.
type RelatedBillsResponse struct {
	RelatedBills []RelatedBill `json:"relatedBills" yaml:"relatedBills" validate:"dive"`
	Paged        `yaml:",inline"`
}

// Items returns the related bills on this page.
func (r *RelatedBillsResponse) Items() []RelatedBill { return r.RelatedBills }

// Subject Types

// LegislativeSubject is an indexing term assigned to a bill.
type LegislativeSubject struct {
	Name       string `json:"name"                 yaml:"name"                 validate:"required"`
	UpdateDate *Date  `json:"updateDate,omitempty" yaml:"updateDate,omitempty"`
}

// BillSubjects groups the subject terms and the policy area of a bill.
type BillSubjects struct {
	LegislativeSubjects []LegislativeSubject `json:"legislativeSubjects"  yaml:"legislativeSubjects"  validate:"dive"`
	PolicyArea          *PolicyArea          `json:"policyArea,omitempty" yaml:"policyArea,omitempty"`
}

// SubjectsResponse is a page of legislative subjects.
type SubjectsResponse struct {
	Subjects BillSubjects `json:"subjects" yaml:"subjects"`
	Paged    `yaml:",inline"`
}

// Items returns the legislative subjects on this page.
func (r *SubjectsResponse) Items() []LegislativeSubject { return r.Subjects.LegislativeSubjects }

// Summary Types

// Summary is a CRS summary of a bill at one stage of its history. The bill
// and chamber fields are only populated by the summaries collection endpoints.
type Summary struct {
	ActionDate            Date         `json:"actionDate"                      yaml:"actionDate"`
	ActionDesc            string       `json:"actionDesc"                      yaml:"actionDesc"`
	Bill                  *SummaryBill `json:"bill,omitempty"                  yaml:"bill,omitempty"`
	CurrentChamber        Chamber      `json:"currentChamber,omitempty"        yaml:"currentChamber,omitempty"`
	CurrentChamberCode    ChamberCode  `json:"currentChamberCode,omitempty"    yaml:"currentChamberCode,omitempty"`
	LastSummaryUpdateDate *Date        `json:"lastSummaryUpdateDate,omitempty" yaml:"lastSummaryUpdateDate,omitempty"`
	Text                  string       `json:"text"                            yaml:"text"`
	UpdateDate            Date         `json:"updateDate"                      yaml:"updateDate"`
	VersionCode           string       `json:"versionCode"                     yaml:"versionCode"                     validate:"required"`
}

// SummaryBill identifies the bill a summary describes.
type SummaryBill struct {
	Congress                uint32      `json:"congress"                          yaml:"congress"                          validate:"required"`
	Number                  string      `json:"number"                            yaml:"number"                            validate:"required"`
	OriginChamber           Chamber     `json:"originChamber"                     yaml:"originChamber"`
	OriginChamberCode       ChamberCode `json:"originChamberCode"                 yaml:"originChamberCode"`
	Title                   string      `json:"title"                             yaml:"title"`
	Type                    BillType    `json:"type"                              yaml:"type"                              validate:"required"`
	UpdateDateIncludingText *Date       `json:"updateDateIncludingText,omitempty" yaml:"updateDateIncludingText,omitempty"`
	URL                     string      `json:"url"                               yaml:"url"`
}

// SummariesResponse is a page of summaries.
type SummariesResponse struct {
	Summaries []Summary `json:"summaries" yaml:"summaries" validate:"dive"`
	Paged     `yaml:",inline"`
}

// Items returns the summaries on this page.
func (r *SummariesResponse) Items() []Summary { return r.Summaries }

// Text Types

// TextVersion is one published version of a bill's text.
type TextVersion struct {
	Date    *Date        `json:"date,omitempty" yaml:"date,omitempty"`
	Formats []TextFormat `json:"formats"        yaml:"formats"`
	Type    string       `json:"type"           yaml:"type"           validate:"required"`
}

// TextFormat is a download link for a text version.
type TextFormat struct {
	Type string `json:"type" yaml:"type"`
	URL  string `json:"url"  yaml:"url"`
}

// TextVersionsResponse is a page of text versions.
type TextVersionsResponse struct {
	TextVersions []TextVersion `json:"textVersions" yaml:"textVersions" validate:"dive"`
	Paged        `yaml:",inline"`
}

// Items returns the text versions on this page.
func (r *TextVersionsResponse) Items() []TextVersion { return r.TextVersions }

// Title Types

// Title is one of the official, short, or display titles of a bill.
type Title struct {
	BillTextVersionCode string       `json:"billTextVersionCode,omitempty" yaml:"billTextVersionCode,omitempty"`
	BillTextVersionName string       `json:"billTextVersionName,omitempty" yaml:"billTextVersionName,omitempty"`
	ChamberCode         *ChamberCode `json:"chamberCode,omitempty"         yaml:"chamberCode,omitempty"`
	ChamberName         *Chamber     `json:"chamberName,omitempty"         yaml:"chamberName,omitempty"`
	Title               string       `json:"title"                         yaml:"title"                         validate:"required"`
	TitleType           string       `json:"titleType"                     yaml:"titleType"`
	TitleTypeCode       *uint32      `json:"titleTypeCode,omitempty"       yaml:"titleTypeCode,omitempty"`
	UpdateDate          *Date        `json:"updateDate,omitempty"          yaml:"updateDate,omitempty"`
}

// TitlesResponse is a page of titles.
type TitlesResponse struct {
	Titles []Title `json:"titles" yaml:"titles" validate:"dive"`
	Paged  `yaml:",inline"`
}

// Items returns the titles on this page.
func (r *TitlesResponse) Items() []Title { return r.Titles }

// Member Types

// Depiction is a member's official portrait.
type Depiction struct {
	Attribution string `json:"attribution,omitempty" yaml:"attribution,omitempty"`
	ImageURL    string `json:"imageUrl"              yaml:"imageUrl"`
}

// ServiceTerm is a term of service as listed in member collections.
type ServiceTerm struct {
	Chamber   string  `json:"chamber"           yaml:"chamber"`
	StartYear uint32  `json:"startYear"         yaml:"startYear"`
	EndYear   *uint32 `json:"endYear,omitempty" yaml:"endYear,omitempty"`
}

// ServiceTerms wraps the term list the API nests under "item".
type ServiceTerms struct {
	Item []ServiceTerm `json:"item" yaml:"item"`
}

// MemberSummary is a member as it appears in list endpoints.
type MemberSummary struct {
	BioguideID string        `json:"bioguideId"          yaml:"bioguideId"          validate:"required"`
	Depiction  *Depiction    `json:"depiction,omitempty" yaml:"depiction,omitempty"`
	District   *uint32       `json:"district,omitempty"  yaml:"district,omitempty"`
	Name       string        `json:"name"                yaml:"name"`
	PartyName  string        `json:"partyName"           yaml:"partyName"`
	State      string        `json:"state"               yaml:"state"`
	Terms      *ServiceTerms `json:"terms,omitempty"     yaml:"terms,omitempty"`
	UpdateDate *Date         `json:"updateDate,omitempty" yaml:"updateDate,omitempty"`
	URL        string        `json:"url"                 yaml:"url"`
}

// MembersResponse is a page of members.
type MembersResponse struct {
	Members []MemberSummary `json:"members" yaml:"members" validate:"dive"`
	Paged   `yaml:",inline"`
}

// Items returns the members on this page.
func (r *MembersResponse) Items() []MemberSummary { return r.Members }

// PartyAffiliation is a period of membership in a party.
type PartyAffiliation struct {
	PartyAbbreviation string `json:"partyAbbreviation" yaml:"partyAbbreviation"`
	PartyName         string `json:"partyName"         yaml:"partyName"`
	StartYear         uint32 `json:"startYear"         yaml:"startYear"`
}

// MemberTerm is a term of service in the member detail record.
type MemberTerm struct {
	Chamber    string  `json:"chamber"            yaml:"chamber"`
	Congress   uint32  `json:"congress"           yaml:"congress"`
	District   *uint32 `json:"district,omitempty" yaml:"district,omitempty"`
	EndYear    *uint32 `json:"endYear,omitempty"  yaml:"endYear,omitempty"`
	MemberType string  `json:"memberType"         yaml:"memberType"`
	StartYear  uint32  `json:"startYear"          yaml:"startYear"`
	StateCode  string  `json:"stateCode"          yaml:"stateCode"`
	StateName  string  `json:"stateName"          yaml:"stateName"`
}

// Member is the full record of a member of Congress.
type Member struct {
	BioguideID             string             `json:"bioguideId"                       yaml:"bioguideId"                       validate:"required"`
	BirthYear              string             `json:"birthYear,omitempty"              yaml:"birthYear,omitempty"`
	CosponsoredLegislation *CountRef          `json:"cosponsoredLegislation,omitempty" yaml:"cosponsoredLegislation,omitempty"`
	CurrentMember          bool               `json:"currentMember"                    yaml:"currentMember"`
	Depiction              *Depiction         `json:"depiction,omitempty"              yaml:"depiction,omitempty"`
	DirectOrderName        string             `json:"directOrderName"                  yaml:"directOrderName"`
	FirstName              string             `json:"firstName"                        yaml:"firstName"`
	HonorificName          string             `json:"honorificName,omitempty"          yaml:"honorificName,omitempty"`
	InvertedOrderName      string             `json:"invertedOrderName"                yaml:"invertedOrderName"`
	LastName               string             `json:"lastName"                         yaml:"lastName"`
	OfficialWebsiteURL     string             `json:"officialWebsiteUrl,omitempty"     yaml:"officialWebsiteUrl,omitempty"`
	PartyHistory           []PartyAffiliation `json:"partyHistory,omitempty"           yaml:"partyHistory,omitempty"`
	SponsoredLegislation   *CountRef          `json:"sponsoredLegislation,omitempty"   yaml:"sponsoredLegislation,omitempty"`
	State                  string             `json:"state"                            yaml:"state"`
	Terms                  []MemberTerm       `json:"terms,omitempty"                  yaml:"terms,omitempty"`
	UpdateDate             *Date              `json:"updateDate,omitempty"             yaml:"updateDate,omitempty"`
}

// MemberResponse wraps a single member.
type MemberResponse struct {
	Member Member `json:"member" yaml:"member"`
}

// LegislationItem is a bill or amendment sponsored or cosponsored by a
// member. Amendments carry AmendmentNumber in place of Number and Type.
type LegislationItem struct {
	AmendmentNumber string        `json:"amendmentNumber,omitempty" yaml:"amendmentNumber,omitempty"`
	Congress        uint32        `json:"congress"                  yaml:"congress"                  validate:"required"`
	IntroducedDate  Date          `json:"introducedDate"            yaml:"introducedDate"`
	LatestAction    *LatestAction `json:"latestAction,omitempty"    yaml:"latestAction,omitempty"`
	Number          string        `json:"number,omitempty"          yaml:"number,omitempty"`
	PolicyArea      *PolicyArea   `json:"policyArea,omitempty"      yaml:"policyArea,omitempty"`
	Title           string        `json:"title,omitempty"           yaml:"title,omitempty"`
	Type            string        `json:"type,omitempty"            yaml:"type,omitempty"`
	URL             string        `json:"url"                       yaml:"url"`
}

// SponsoredLegislationResponse is a page of legislation a member sponsored.
type SponsoredLegislationResponse struct {
	SponsoredLegislation []LegislationItem `json:"sponsoredLegislation" yaml:"sponsoredLegislation" validate:"dive"`
	Paged                `yaml:",inline"`
}

// Items returns the legislation on this page.
func (r *SponsoredLegislationResponse) Items() []LegislationItem { return r.SponsoredLegislation }

// CosponsoredLegislationResponse is a page of legislation a member cosponsored.
type CosponsoredLegislationResponse struct {
	CosponsoredLegislation []LegislationItem `json:"cosponsoredLegislation" yaml:"cosponsoredLegislation" validate:"dive"`
	Paged                  `yaml:",inline"`
}

// Items returns the legislation on this page.
func (r *CosponsoredLegislationResponse) Items() []LegislationItem { return r.CosponsoredLegislation }

// Congress Types

// CongressSession is one session of a congress in one chamber.
type CongressSession struct {
	Chamber   Chamber `json:"chamber"           yaml:"chamber"`
	EndDate   *Date   `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	Number    uint32  `json:"number"            yaml:"number"`
	StartDate Date    `json:"startDate"         yaml:"startDate"`
	Type      string  `json:"type"              yaml:"type"`
}

// CongressInfo describes a congress and its sessions.
type CongressInfo struct {
	EndYear    string            `json:"endYear"              yaml:"endYear"`
	Name       string            `json:"name"                 yaml:"name"                 validate:"required"`
	Number     uint32            `json:"number,omitempty"     yaml:"number,omitempty"`
	Sessions   []CongressSession `json:"sessions"             yaml:"sessions"`
	StartYear  string            `json:"startYear"            yaml:"startYear"`
	UpdateDate *Date             `json:"updateDate,omitempty" yaml:"updateDate,omitempty"`
	URL        string            `json:"url"                  yaml:"url"`
}

// CongressesResponse is a page of congresses.
type CongressesResponse struct {
	Congresses []CongressInfo `json:"congresses" yaml:"congresses" validate:"dive"`
	Paged      `yaml:",inline"`
}

// Items returns the congresses on this page.
func (r *CongressesResponse) Items() []CongressInfo { return r.Congresses }

// CongressResponse wraps a single congress.
type CongressResponse struct {
	Congress CongressInfo `json:"congress" yaml:"congress"`
}
