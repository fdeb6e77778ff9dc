package schema

// Target tables.
const (
	Permits            = "project_information"
	LandRegistry       = "land_registry"
	Buildings          = "buildings"
	Projects           = "projects"
	Developers         = "developers"
	ContractorProjects = "contractor_projects"
	ConsultantProjects = "consultant_projects"
	Areas              = "areas"
	Companies          = "companies"
)

// Company types of the companies directory.
const (
	CompanyDeveloper  = "developer"
	CompanyContractor = "contractor"
	CompanyConsultant = "consultant"
)

func req(name string, t Type) Column { return Column{Name: name, Type: t, Required: true} }
func opt(name string, t Type) Column { return Column{Name: name, Type: t} }
func tr(name string) Column         { return Column{Name: name, Type: Text, Translatable: true} }

var definitions = []Definition{
	{
		Table:       Permits,
		DisplayName: "Project Information",
		ConflictKey: []string{"project_no"},
		Columns: []Column{
			req("project_no", Number),
			req("parcel_id", Number),
			tr("consultant_english"),
			tr("contractor_english"),
			opt("consultant_license_no", Number),
			opt("contractor_license_no", Number),
			opt("project_status_english", Text),
			opt("project_creation_date", Date),
			opt("project_completion_date", Date),
			opt("permit_date", Date),
			opt("work_start_date", Date),
			opt("expected_completion_date", Date),
			opt("related_entity_name_en", Text),
			opt("applicanttype", Text),
		},
	},
	{
		Table:       LandRegistry,
		DisplayName: "Land Registry",
		ConflictKey: []string{"property_id"},
		Columns: []Column{
			opt("property_id", Number),
			req("parcel_id", Number),
			opt("project_id", Number),
			opt("area_id", Number),
			opt("zone_id", Number),
			opt("area_name_en", Text),
			opt("land_number", Number),
			opt("land_sub_number", Number),
			opt("actual_area", Number),
			opt("property_type_en", Text),
			opt("property_sub_type_en", Text),
			opt("land_type_en", Text),
			opt("is_free_hold", Boolean),
			opt("is_registered", Boolean),
			opt("munc_zip_code", Number),
		},
	},
	{
		Table:       Buildings,
		DisplayName: "Buildings",
		ConflictKey: []string{"property_id"},
		Columns: []Column{
			opt("property_id", Number),
			req("parcel_id", Number),
			opt("project_id", Number),
			opt("area_name_en", Text),
			opt("land_number", Number),
			opt("building_number", Text),
			opt("floors", Number),
			opt("rooms", Number),
			opt("rooms_en", Text),
			opt("car_parks", Number),
			opt("built_up_area", Number),
			opt("actual_area", Number),
			opt("common_area", Number),
			opt("shops", Number),
			opt("flats", Number),
			opt("offices", Number),
			opt("elevators", Number),
			opt("swimming_pools", Number),
			opt("property_type_en", Text),
			opt("property_sub_type_en", Text),
			opt("master_project_en", Text),
			opt("project_name_en", Text),
			opt("land_type_en", Text),
			opt("is_free_hold", Boolean),
			opt("creation_date", Date),
		},
	},
	{
		Table:       Projects,
		DisplayName: "Projects (RERA)",
		ConflictKey: []string{"project_id"},
		Columns: []Column{
			req("project_id", Number),
			opt("project_number", Number),
			tr("project_name"),
			opt("master_developer_id", Number),
			opt("developer_id", Number),
			opt("developer_name", Text),
			opt("master_developer_name", Text),
			opt("project_status", Text),
			opt("percent_completed", Number),
			opt("project_start_date", Date),
			opt("project_end_date", Date),
			opt("completion_date", Date),
			opt("area_name_en", Text),
			opt("master_project_en", Text),
			opt("zoning_authority_en", Text),
			opt("project_description_en", Text),
			opt("no_of_lands", Number),
			opt("no_of_buildings", Number),
			opt("no_of_villas", Number),
			opt("no_of_units", Number),
			opt("escrow_agent_name", Text),
		},
	},
	{
		Table:       Developers,
		DisplayName: "Developers",
		ConflictKey: []string{"developer_id"},
		Columns: []Column{
			req("developer_id", Number),
			opt("developer_number", Number),
			tr("developer_name_en"),
			opt("license_number", Text),
			opt("license_source_en", Text),
			opt("license_type_en", Text),
			opt("license_issue_date", Date),
			opt("license_expiry_date", Date),
			opt("legal_status_en", Text),
			opt("phone", Text),
			opt("fax", Text),
			opt("webpage", Text),
			opt("registration_date", Date),
		},
	},
	{
		Table:       ContractorProjects,
		DisplayName: "Contractor Projects",
		ConflictKey: []string{SurrogateKey},
		Columns: []Column{
			opt("contractor_license_no", Number),
			tr("contractor_english"),
			opt("project_no", Number),
			req("parcel_id", Number),
			opt("project_type", Text),
			opt("consultant_english", Text),
			opt("building_type", Text),
			opt("community_name", Text),
			opt("building_count", Number),
			opt("first_building_permit_date", Date),
			opt("last_app_submission_date", Date),
			opt("project_status", Text),
			opt("project_closing_date", Date),
		},
	},
	{
		Table:       ConsultantProjects,
		DisplayName: "Consultant Projects",
		ConflictKey: []string{SurrogateKey},
		Columns: []Column{
			opt("consultant_license_no", Number),
			tr("consultant_english"),
			opt("project_no", Number),
			req("parcel_id", Number),
			opt("project_type", Text),
			opt("contractor_english", Text),
			opt("building_type", Text),
			opt("community_name", Text),
			opt("building_count", Number),
			opt("first_building_permit_date", Date),
			opt("last_app_submission_date", Date),
			opt("project_status", Text),
			opt("project_closing_date", Date),
		},
	},
	{
		Table:       Areas,
		DisplayName: "Areas",
		ConflictKey: []string{"munc_zip_code"},
		Columns: []Column{
			req("munc_zip_code", Number),
			req("area_name_en", Text),
		},
	},
	{
		Table:       Companies,
		DisplayName: "Companies",
		ConflictKey: []string{"license_no", "type"},
		Columns: []Column{
			req("license_no", Number),
			req("name_en", Text),
			req("type", Text),
			opt("project_count", Number),
		},
	},
}

var index = func() map[string]int {
	res := make(map[string]int, len(definitions))
	for i, d := range definitions {
		res[d.Table] = i
	}
	return res
}()

// Get returns the definition of a table.
func Get(table string) (Definition, bool) {
	i, ok := index[table]
	if !ok {
		return Definition{}, false
	}
	return definitions[i], true
}

// All returns all definitions in registry order.
func All() []Definition {
	res := make([]Definition, len(definitions))
	copy(res, definitions)
	return res
}

// Tables returns names of all registered tables.
func Tables() []string {
	res := make([]string, len(definitions))
	for i, d := range definitions {
		res[i] = d.Table
	}
	return res
}
