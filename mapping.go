package apicov

// RouteMapping is the hand-maintained table of swagger paths to the MCP
// tool names expected to implement them. It is the source of truth for what
// should exist: a spec route without an entry here is reported as unmapped
// no matter what the server implements. Keys must match the spec path
// exactly, placeholder syntax included; a path carrying several HTTP methods
// lists one tool per method.
func RouteMapping() map[string][]string {
	return map[string][]string{
		// Companies
		"/v1/companies/{cik}/calendar":  {"get_company_calendar"},
		"/v1/companies/{id}/financials": {"get_company_financials"},
		"/v1/companies/{cik}/filings":   {"get_company_filings"},

		// ETFs
		"/v1/etfs/{identifier}/holdings": {"get_etf_holdings"},

		// Forms 13F
		"/v1/forms/13f/{id}": {"get_form13f_submission"},
		"/v1/forms/13f":      {"get_form13f_submissions"},

		// Forms 4
		"/v1/forms/4/{id}": {"get_form4_filing"},

		// Form ADV - Firms
		"/v1/forms/adv/firms":        {"get_form_adv_firms"},
		"/v1/forms/adv/firms/{crd}":  {"get_form_adv_firm"},
		"/v1/forms/adv/filings/{id}": {"get_form_adv_filing"},

		// Form ADV - Firm sub-resources
		"/v1/forms/adv/firms/{crd}/filings":         {"get_form_adv_firm_filings"},
		"/v1/forms/adv/firms/{crd}/addresses":       {"get_form_adv_firm_addresses"},
		"/v1/forms/adv/firms/{crd}/notice_filings":  {"get_form_adv_firm_notice_filings"},
		"/v1/forms/adv/firms/{crd}/direct_owners":   {"get_form_adv_firm_direct_owners"},
		"/v1/forms/adv/firms/{crd}/indirect_owners": {"get_form_adv_firm_indirect_owners"},
		"/v1/forms/adv/firms/{crd}/ownership_chain": {"get_form_adv_firm_ownership_chain"},
		"/v1/forms/adv/firms/{crd}/private_funds":   {"get_form_adv_firm_private_funds"},
		"/v1/forms/adv/firms/{crd}/related_persons": {"get_form_adv_firm_related_persons"},
		"/v1/forms/adv/firms/{crd}/other_names":     {"get_form_adv_firm_other_names"},
		"/v1/forms/adv/firms/{crd}/sma_data":        {"get_form_adv_firm_sma_data"},
		"/v1/forms/adv/firms/{crd}/disclosures":     {"get_form_adv_firm_disclosures"},
		"/v1/forms/adv/firms/{crd}/brochures":       {"get_form_adv_firm_brochures"},
		"/v1/forms/adv/firms/{crd}/aum_history":     {"get_form_adv_firm_aum_history"},

		// Form ADV - Cross-entity searches
		"/v1/forms/adv/funds":  {"get_form_adv_funds"},
		"/v1/forms/adv/owners": {"get_form_adv_owners"},

		// Lobbying
		"/v1/lobbying/client_performance": {"get_lobbying_client_performance"},
		"/v1/lobbying/clients/search":     {"get_lobbying_clients_search"},
		"/v1/lobbying/clients/{id}":       {"get_lobbying_client_detail"},

		// Lists (watchlists) - GET and POST share the same path
		"/v1/lists":              {"get_lists", "create_list"},
		"/v1/lists/{id_or_name}": {"get_list", "update_list", "delete_list"},

		// List items
		"/v1/lists/{list_id}/items":        {"add_list_item"},
		"/v1/lists/{list_id}/items/toggle": {"toggle_list_item"},
		"/v1/lists/{list_id}/items/{id}":   {"update_list_item", "delete_list_item"},

		// Search
		"/v1/search": {"search"},

		// Documents (proxied through the API)
		"/v1/documents/{accession_number}":          {"get_sec_document"},
		"/v1/documents/{accession_number}/metadata": {"get_sec_document_metadata"},
	}
}
