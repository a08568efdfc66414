package legaldata

import "nyaay-saathi/internal/models"

// Jargon is applied in this order; earlier terms annotate first.
var Jargon = []models.JargonEntry{
	{Term: "cognizable offense", Explanation: "crimes where police can arrest without a warrant"},
	{Term: "non-cognizable offense", Explanation: "crimes where police need court permission to arrest"},
	{Term: "bail", Explanation: "temporary release during trial proceedings"},
	{Term: "anticipatory bail", Explanation: "bail obtained in anticipation of arrest"},
	{Term: "habeas corpus", Explanation: "legal order to bring a detained person to court"},
	{Term: "affidavit", Explanation: "written statement confirmed by oath"},
	{Term: "plaintiff", Explanation: "person who initiates a lawsuit"},
	{Term: "defendant", Explanation: "person against whom legal action is brought"},
	{Term: "deposition", Explanation: "recorded testimony under oath"},
	{Term: "jurisdiction", Explanation: "authority of a court to hear a case"},
	{Term: "suo moto", Explanation: "action taken by a court on its own initiative"},
	{Term: "writ petition", Explanation: "court application for an order directing someone to act/not act"},
	{Term: "respondent", Explanation: "person who answers a court petition"},
	{Term: "petitioner", Explanation: "person who files a formal petition in court"},
	{Term: "decree", Explanation: "formal court order"},
	{Term: "acquittal", Explanation: "court declaration that someone is not guilty"},
	{Term: "stay order", Explanation: "court order to temporarily stop a proceeding"},
	{Term: "adjournment", Explanation: "postponement of court proceedings"},
	{Term: "caveat", Explanation: "notice submitted to prevent actions without informing the person"},
	{Term: "injunction", Explanation: "court order prohibiting someone from doing something"},
	{Term: "quash", Explanation: "to legally invalidate or void"},
	{Term: "remand", Explanation: "return a case to a lower court for further action"},
	{Term: "ex-parte", Explanation: "legal proceeding conducted with only one party present"},
	{Term: "tort", Explanation: "civil wrong that causes harm or loss"},
	{Term: "declaration", Explanation: "court judgment that establishes rights without ordering any action"},
	{Term: "plaint", Explanation: "written statement of a plaintiff's claim"},
	{Term: "subpoena", Explanation: "court order to appear or produce documents"},
	{Term: "vacate", Explanation: "to cancel or nullify a court order"},
	{Term: "undertaking", Explanation: "formal promise given to a court"},
}

var LegalCodes = []models.LegalCode{
	{Code: "IPC", Name: "Indian Penal Code"},
	{Code: "CrPC", Name: "Code of Criminal Procedure"},
	{Code: "CPC", Name: "Code of Civil Procedure"},
	{Code: "IT Act", Name: "Information Technology Act"},
	{Code: "RTI Act", Name: "Right to Information Act"},
	{Code: "POCSO", Name: "Protection of Children from Sexual Offences Act"},
	{Code: "RERA", Name: "Real Estate (Regulation and Development) Act"},
	{Code: "SARFAESI", Name: "Securitisation and Reconstruction of Financial Assets and Enforcement of Securities Interest Act"},
}

var IPCSections = []models.IPCSection{
	{Section: "Section 299-304", Description: "Culpable homicide and murder"},
	{Section: "Section 304A", Description: "Death by negligence"},
	{Section: "Section 319-338", Description: "Causing hurt and grievous hurt"},
	{Section: "Section 339-348", Description: "Wrongful restraint and confinement"},
	{Section: "Section 375-376E", Description: "Sexual offenses"},
	{Section: "Section 378-382", Description: "Theft"},
	{Section: "Section 383-389", Description: "Extortion"},
	{Section: "Section 390-402", Description: "Robbery and dacoity"},
	{Section: "Section 403-404", Description: "Criminal misappropriation of property"},
	{Section: "Section 405-409", Description: "Criminal breach of trust"},
	{Section: "Section 415-420", Description: "Cheating"},
	{Section: "Section 441-462", Description: "Criminal trespass"},
	{Section: "Section 463-477A", Description: "Forgery and counterfeiting"},
	{Section: "Section 498A", Description: "Matrimonial cruelty"},
	{Section: "Section 499-502", Description: "Defamation"},
}
