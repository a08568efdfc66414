package legaldata

import "nyaay-saathi/internal/models"

var DocumentTemplates = []models.DocumentTemplate{
	{
		ID:       "police_complaint",
		Title:    "Police Complaint Template",
		Template: `To,
The Station House Officer,
{police_station} Police Station,
{police_station_address}

Subject: Complaint regarding {complaint_subject}

Respected Sir/Madam,

I, {complainant_name}, resident of {complainant_address}, wish to report the following incident:

Date of Incident: {incident_date}
Time of Incident: {incident_time}
Place of Incident: {incident_place}

Details of the incident:
{incident_details}

Names and details of persons involved (if known):
{persons_involved}

Names and contact details of witnesses (if any):
{witnesses}

I request you to register my complaint and take appropriate action as per law.

Yours sincerely,
{complainant_name}
Contact: {complainant_phone}
Date: {current_date}
`,
	},
	{
		ID:       "rti_application",
		Title:    "RTI Application Template",
		Template: `To,
The Public Information Officer,
{department_name},
{department_address}

Subject: Application under Right to Information Act, 2005

Respected Sir/Madam,

I, {applicant_name}, resident of {applicant_address}, wish to seek information under the Right to Information Act, 2005.

The details of the information sought are as follows:
{information_sought}

Period for which information is sought: {information_period}

I state that the information sought does not fall within the restrictions contained in Section 8 and 9 of the RTI Act and to the best of my knowledge it pertains to your department.

A fee of Rs. 10/- has been deposited vide receipt number {receipt_number} dated {receipt_date} / is enclosed herewith as IPO/DD.

Yours faithfully,
{applicant_name}
Address: {applicant_address}
Phone: {applicant_phone}
Date: {current_date}
`,
	},
	{
		ID:       "consumer_complaint",
		Title:    "Consumer Complaint Template",
		Template: `To,
The District Consumer Disputes Redressal Forum,
{district}, {state}

Subject: Complaint under the Consumer Protection Act, 2019

Complainant:
{complainant_name}
{complainant_address}
{complainant_phone}

Opposite Party:
{seller_name}
{seller_address}
{seller_phone}

COMPLAINT

1. Details of transaction:
   Date of purchase/service: {transaction_date}
   Amount paid: Rs. {amount_paid}
   Mode of payment: {payment_mode}
   Receipt/Invoice number: {receipt_number}

2. Details of the product/service:
   {product_details}

3. Complaint details:
   {complaint_details}

4. Deficiency in service/defect in goods:
   {deficiency_details}

5. Steps taken to resolve the issue with the opposite party:
   {resolution_attempts}

6. Relief sought:
   {relief_sought}

7. Declaration:
   I/We declare that the information given above is true to the best of my/our knowledge and belief.

Place: {place}
Date: {current_date}

Signature of the Complainant
{complainant_name}

Attachments:
1. Copy of bill/receipt
2. Copy of correspondence with opposite party
3. Samples/photographs (if applicable)
`,
	},
	{
		ID:       "rent_agreement",
		Title:    "Rent Agreement Template",
		Template: `RENT AGREEMENT

This Rent Agreement is made on this {agreement_date} between:

LANDLORD:
{landlord_name}
{landlord_address}
{landlord_phone}

AND

TENANT:
{tenant_name}
{tenant_address}
{tenant_phone}

1. PREMISES:
   The Landlord agrees to rent to the Tenant the property located at:
   {property_address}

2. TERM:
   The term of this Agreement shall be for a period of {agreement_duration}, commencing from {start_date} and ending on {end_date}.

3. RENT:
   The monthly rent shall be Rs. {monthly_rent}/- payable in advance on or before the {rent_due_date} day of each month.

4. SECURITY DEPOSIT:
   The Tenant has paid a security deposit of Rs. {security_deposit}/- which will be refunded at the time of vacating the premises after deducting any damages or dues.

5. MAINTENANCE:
   The Tenant shall maintain the premises in good condition. Normal wear and tear is expected.

6. UTILITIES:
   {utilities_clause}

7. TERMINATION:
   Either party may terminate this Agreement by giving {notice_period} notice in writing.

8. RESTRICTIONS:
   {restrictions}

9. OTHER TERMS:
   {other_terms}

IN WITNESS WHEREOF, the parties have executed this Agreement on the date first above written.

_________________                 _________________
Landlord Signature                Tenant Signature

Witnesses:
1. Name: {witness1_name}
   Address: {witness1_address}
   Signature: _________________

2. Name: {witness2_name}
   Address: {witness2_address}
   Signature: _________________
`,
	},
}

var Timelines = []models.Timeline{
	{
		ID:    "fir_to_chargesheet",
		Steps: []models.TimelineStep{
			{Step: "File FIR", Timeframe: "Day 1", Details: "Visit police station with jurisdiction"},
			{Step: "Police Investigation", Timeframe: "Day 1-90", Details: "Collection of evidence, statements"},
			{Step: "Arrest (if applicable)", Timeframe: "Varies", Details: "Based on evidence gathering"},
			{Step: "Chargesheet Filing", Timeframe: "Within 90 days", Details: "For serious offenses (60 days for less serious)"},
			{Step: "Court Proceedings", Timeframe: "After chargesheet", Details: "Trial begins after chargesheet"},
		},
	},
	{
		ID:    "consumer_complaint_process",
		Steps: []models.TimelineStep{
			{Step: "Written Complaint to Business", Timeframe: "Day 1", Details: "First attempt at resolution"},
			{Step: "Wait for Response", Timeframe: "15-30 days", Details: "Allow reasonable time for response"},
			{Step: "File Complaint with Consumer Forum", Timeframe: "After trying resolution", Details: "Submit required documents and fee"},
			{Step: "Notice to Opposite Party", Timeframe: "Within 21 days", Details: "Forum sends notice to business"},
			{Step: "Response from Opposite Party", Timeframe: "Within 30 days", Details: "Business submits their response"},
			{Step: "Hearing", Timeframe: "Scheduled by Forum", Details: "Both parties present their case"},
			{Step: "Order/Judgment", Timeframe: "Typically 3-6 months", Details: "Decision by the Consumer Forum"},
		},
	},
	{
		ID:    "civil_case_procedure",
		Steps: []models.TimelineStep{
			{Step: "Filing Plaint", Timeframe: "Day 1", Details: "Submit case to appropriate court with fees"},
			{Step: "Scrutiny & Registration", Timeframe: "7-14 days", Details: "Court checks for defects and registers"},
			{Step: "Summons to Defendant", Timeframe: "Within 30 days", Details: "Court notifies the opposite party"},
			{Step: "Filing Written Statement", Timeframe: "30-90 days", Details: "Defendant responds to allegations"},
			{Step: "Framing of Issues", Timeframe: "Next hearing", Details: "Court defines points of contention"},
			{Step: "Evidence Submission", Timeframe: "Multiple hearings", Details: "Documents and witness testimony"},
			{Step: "Final Arguments", Timeframe: "After evidence", Details: "Lawyers present final case"},
			{Step: "Judgment", Timeframe: "Typically 1-3 years", Details: "Court gives final decision"},
			{Step: "Execution", Timeframe: "If judgment not followed", Details: "Enforcement of court order"},
		},
	},
}
