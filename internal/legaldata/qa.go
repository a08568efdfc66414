package legaldata

import "nyaay-saathi/internal/models"

// DefaultQAPairs is the built-in knowledge base used when no file is present.
// Order matters: the matcher returns the first qualifying entry.
var DefaultQAPairs = []models.QAEntry{
	{
		Question: "What are my rights during an arrest?",
		Answer:   "During an arrest in India, you have several rights under Section 41 and 50 of the CrPC and Article 22 of the Constitution:\n\n1. Right to know the grounds of arrest\n2. Right to inform a relative or friend about your arrest\n3. Right to legal representation/meet a lawyer of your choice\n4. Right to be produced before a magistrate within 24 hours\n5. Right to medical examination\n6. Right against self-incrimination (you can remain silent)\n7. Right against torture or illegal detention\n\nWomen cannot be arrested after sunset and before sunrise except in exceptional circumstances, and only by female police officers.\n\nI am an AI assistant and not a licensed legal advisor. Please consult a lawyer for serious or urgent matters.",
	},
	{
		Question: "How do I file an FIR?",
		Answer:   "To file a First Information Report (FIR) in India:\n\n1. Visit the police station having jurisdiction where the crime occurred\n2. Provide details of the incident to the officer in charge (date, time, place, description of the event, names of suspects if known)\n3. The police officer must register your FIR for cognizable offenses (under Section 154 of CrPC)\n4. Review the FIR before signing it\n5. Collect a free copy of the FIR\n\nIf the police refuse to register your FIR:\n- Approach the Superintendent of Police or other higher officers\n- File a complaint to the Judicial Magistrate under Section 156(3) CrPC\n- File a complaint online on the state police portal\n\nI am an AI assistant and not a licensed legal advisor. Please consult a lawyer for serious or urgent matters.",
	},
}
