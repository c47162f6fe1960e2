package registry

// definitions is the field table of the pre-printed application template.
// Positions are percent of the page, measured from the top-left corner.
var definitions = []FieldDefinition{
	{ID: "dq_driver_name", Page: 1, X: 9.56, Y: 19.57, Width: 46.24, Height: 1.77, Type: TypeText, Label: "Driver Name"},
	{ID: "dq_hire_date", Page: 1, X: 56.78, Y: 19.57, Width: 16.34, Height: 1.77, Type: TypeDate, Label: "Date of Hire", Format: FormatDate},
	{ID: "dq_employee_id", Page: 1, X: 74.1, Y: 19.57, Width: 16.34, Height: 1.77, Type: TypeText, Label: "Employee ID"},
	{ID: "first_name", Page: 2, X: 9.56, Y: 20.51, Width: 33.74, Height: 1.77, Type: TypeText, Label: "First Name", Required: true},
	{ID: "middle_name", Page: 2, X: 44.28, Y: 20.51, Width: 11.44, Height: 1.77, Type: TypeText, Label: "Middle Name"},
	{ID: "last_name", Page: 2, X: 56.7, Y: 20.51, Width: 33.74, Height: 1.77, Type: TypeText, Label: "Last Name", Required: true},
	{ID: "date_of_birth", Page: 2, X: 9.56, Y: 24.17, Width: 13.89, Height: 1.77, Type: TypeDate, Label: "Date of Birth", Required: true, Format: FormatDate},
	{ID: "ssn", Page: 2, X: 24.43, Y: 24.17, Width: 17.16, Height: 1.77, Type: TypeText, Label: "Social Security Number", Required: true, Format: FormatSSN},
	{ID: "phone", Page: 2, X: 42.57, Y: 24.17, Width: 17.16, Height: 1.77, Type: TypeText, Label: "Phone", Required: true, Format: FormatPhone},
	{ID: "email", Page: 2, X: 60.7, Y: 24.17, Width: 29.74, Height: 1.77, Type: TypeText, Label: "Email"},
	{ID: "position", Page: 2, X: 9.56, Y: 27.83, Width: 46.24, Height: 1.77, Type: TypeText, Label: "Position Applied For", Required: true},
	{ID: "application_date", Page: 2, X: 56.78, Y: 27.83, Width: 16.34, Height: 1.77, Type: TypeDate, Label: "Date of Application", Required: true, Format: FormatDate},
	{ID: "available_date", Page: 2, X: 74.1, Y: 27.83, Width: 16.34, Height: 1.77, Type: TypeDate, Label: "Date Available", Format: FormatDate},
	{ID: "addr1_street", Page: 2, X: 9.56, Y: 34.39, Width: 28.59, Height: 2.02, Type: TypeText, Label: "Address 1 Street", Required: true},
	{ID: "addr1_city", Page: 2, X: 38.15, Y: 34.39, Width: 17.97, Height: 2.02, Type: TypeText, Label: "Address 1 City", Required: true},
	{ID: "addr1_state", Page: 2, X: 56.13, Y: 34.39, Width: 6.54, Height: 2.02, Type: TypeText, Label: "Address 1 State", Required: true, Format: FormatState},
	{ID: "addr1_zip", Page: 2, X: 62.66, Y: 34.39, Width: 9.8, Height: 2.02, Type: TypeText, Label: "Address 1 ZIP", Required: true, Format: FormatZIP},
	{ID: "addr1_from", Page: 2, X: 72.47, Y: 34.39, Width: 8.99, Height: 2.02, Type: TypeText, Label: "Address 1 From"},
	{ID: "addr1_to", Page: 2, X: 81.45, Y: 34.39, Width: 8.99, Height: 2.02, Type: TypeText, Label: "Address 1 To"},
	{ID: "addr2_street", Page: 2, X: 9.56, Y: 36.41, Width: 28.59, Height: 2.02, Type: TypeText, Label: "Address 2 Street"},
	{ID: "addr2_city", Page: 2, X: 38.15, Y: 36.41, Width: 17.97, Height: 2.02, Type: TypeText, Label: "Address 2 City"},
	{ID: "addr2_state", Page: 2, X: 56.13, Y: 36.41, Width: 6.54, Height: 2.02, Type: TypeText, Label: "Address 2 State", Format: FormatState},
	{ID: "addr2_zip", Page: 2, X: 62.66, Y: 36.41, Width: 9.8, Height: 2.02, Type: TypeText, Label: "Address 2 ZIP", Format: FormatZIP},
	{ID: "addr2_from", Page: 2, X: 72.47, Y: 36.41, Width: 8.99, Height: 2.02, Type: TypeText, Label: "Address 2 From"},
	{ID: "addr2_to", Page: 2, X: 81.45, Y: 36.41, Width: 8.99, Height: 2.02, Type: TypeText, Label: "Address 2 To"},
	{ID: "addr3_street", Page: 2, X: 9.56, Y: 38.43, Width: 28.59, Height: 2.02, Type: TypeText, Label: "Address 3 Street"},
	{ID: "addr3_city", Page: 2, X: 38.15, Y: 38.43, Width: 17.97, Height: 2.02, Type: TypeText, Label: "Address 3 City"},
	{ID: "addr3_state", Page: 2, X: 56.13, Y: 38.43, Width: 6.54, Height: 2.02, Type: TypeText, Label: "Address 3 State", Format: FormatState},
	{ID: "addr3_zip", Page: 2, X: 62.66, Y: 38.43, Width: 9.8, Height: 2.02, Type: TypeText, Label: "Address 3 ZIP", Format: FormatZIP},
	{ID: "addr3_from", Page: 2, X: 72.47, Y: 38.43, Width: 8.99, Height: 2.02, Type: TypeText, Label: "Address 3 From"},
	{ID: "addr3_to", Page: 2, X: 81.45, Y: 38.43, Width: 8.99, Height: 2.02, Type: TypeText, Label: "Address 3 To"},
	{ID: "work_authorized_yes", Page: 2, X: 79.0, Y: 43.86, Width: 1.47, Height: 1.14, Type: TypeCheckbox, Label: "Authorized to work in the U.S.: yes"},
	{ID: "work_authorized_no", Page: 2, X: 85.21, Y: 43.86, Width: 1.47, Height: 1.14, Type: TypeCheckbox, Label: "Authorized to work in the U.S.: no"},
	{ID: "age_21_yes", Page: 2, X: 79.0, Y: 46.01, Width: 1.47, Height: 1.14, Type: TypeCheckbox, Label: "At least 21 years of age: yes"},
	{ID: "age_21_no", Page: 2, X: 85.21, Y: 46.01, Width: 1.47, Height: 1.14, Type: TypeCheckbox, Label: "At least 21 years of age: no"},
	{ID: "emergency_name", Page: 2, X: 9.56, Y: 60.58, Width: 38.07, Height: 1.77, Type: TypeText, Label: "Emergency Contact"},
	{ID: "emergency_phone", Page: 2, X: 72.47, Y: 60.58, Width: 17.97, Height: 1.77, Type: TypeText, Label: "Emergency Contact Phone", Format: FormatPhone},
	{ID: "emp1_name", Page: 3, X: 9.56, Y: 23.46, Width: 42.81, Height: 1.77, Type: TypeText, Label: "Employer 1 Name", Required: true},
	{ID: "emp1_phone", Page: 3, X: 53.35, Y: 23.46, Width: 15.52, Height: 1.77, Type: TypeText, Label: "Employer 1 Phone", Format: FormatPhone},
	{ID: "emp1_from", Page: 3, X: 69.85, Y: 23.46, Width: 9.8, Height: 1.77, Type: TypeText, Label: "Employer 1 From", Required: true},
	{ID: "emp1_to", Page: 3, X: 80.64, Y: 23.46, Width: 9.8, Height: 1.77, Type: TypeText, Label: "Employer 1 To"},
	{ID: "emp1_address", Page: 3, X: 9.56, Y: 27.12, Width: 46.9, Height: 1.77, Type: TypeText, Label: "Employer 1 Address"},
	{ID: "emp1_city", Page: 3, X: 57.43, Y: 27.12, Width: 16.34, Height: 1.77, Type: TypeText, Label: "Employer 1 City"},
	{ID: "emp1_state", Page: 3, X: 74.75, Y: 27.12, Width: 5.72, Height: 1.77, Type: TypeText, Label: "Employer 1 State", Format: FormatState},
	{ID: "emp1_zip", Page: 3, X: 81.45, Y: 27.12, Width: 8.99, Height: 1.77, Type: TypeText, Label: "Employer 1 ZIP", Format: FormatZIP},
	{ID: "emp1_position", Page: 3, X: 9.56, Y: 30.78, Width: 24.51, Height: 1.77, Type: TypeText, Label: "Employer 1 Position"},
	{ID: "emp1_reason", Page: 3, X: 35.05, Y: 30.78, Width: 55.39, Height: 1.77, Type: TypeText, Label: "Employer 1 Reason for Leaving"},
	{ID: "emp2_name", Page: 3, X: 9.56, Y: 38.19, Width: 42.81, Height: 1.77, Type: TypeText, Label: "Employer 2 Name"},
	{ID: "emp2_phone", Page: 3, X: 53.35, Y: 38.19, Width: 15.52, Height: 1.77, Type: TypeText, Label: "Employer 2 Phone", Format: FormatPhone},
	{ID: "emp2_from", Page: 3, X: 69.85, Y: 38.19, Width: 9.8, Height: 1.77, Type: TypeText, Label: "Employer 2 From"},
	{ID: "emp2_to", Page: 3, X: 80.64, Y: 38.19, Width: 9.8, Height: 1.77, Type: TypeText, Label: "Employer 2 To"},
	{ID: "emp2_address", Page: 3, X: 9.56, Y: 41.86, Width: 46.9, Height: 1.77, Type: TypeText, Label: "Employer 2 Address"},
	{ID: "emp2_city", Page: 3, X: 57.43, Y: 41.86, Width: 16.34, Height: 1.77, Type: TypeText, Label: "Employer 2 City"},
	{ID: "emp2_state", Page: 3, X: 74.75, Y: 41.86, Width: 5.72, Height: 1.77, Type: TypeText, Label: "Employer 2 State", Format: FormatState},
	{ID: "emp2_zip", Page: 3, X: 81.45, Y: 41.86, Width: 8.99, Height: 1.77, Type: TypeText, Label: "Employer 2 ZIP", Format: FormatZIP},
	{ID: "emp2_position", Page: 3, X: 9.56, Y: 45.52, Width: 24.51, Height: 1.77, Type: TypeText, Label: "Employer 2 Position"},
	{ID: "emp2_reason", Page: 3, X: 35.05, Y: 45.52, Width: 55.39, Height: 1.77, Type: TypeText, Label: "Employer 2 Reason for Leaving"},
	{ID: "acc_none", Page: 5, X: 9.56, Y: 19.44, Width: 1.47, Height: 1.14, Type: TypeCheckbox, Label: "No accidents"},
	{ID: "acc1_date", Page: 5, X: 9.56, Y: 21.72, Width: 10.62, Height: 2.02, Type: TypeDate, Label: "Accident 1 Date", Format: FormatDate},
	{ID: "acc1_nature", Page: 5, X: 20.18, Y: 21.72, Width: 27.78, Height: 2.02, Type: TypeText, Label: "Accident 1 Nature"},
	{ID: "acc1_location", Page: 5, X: 47.96, Y: 21.72, Width: 17.97, Height: 2.02, Type: TypeText, Label: "Accident 1 Location"},
	{ID: "acc1_fatalities", Page: 5, X: 65.93, Y: 21.72, Width: 8.17, Height: 2.02, Type: TypeText, Label: "Accident 1 Fatalities"},
	{ID: "acc1_injuries", Page: 5, X: 74.1, Y: 21.72, Width: 8.17, Height: 2.02, Type: TypeText, Label: "Accident 1 Injuries"},
	{ID: "acc1_hazmat", Page: 5, X: 82.27, Y: 21.72, Width: 8.17, Height: 2.02, Type: TypeText, Label: "Accident 1 Hazmat Spill"},
	{ID: "acc2_date", Page: 5, X: 9.56, Y: 23.74, Width: 10.62, Height: 2.02, Type: TypeDate, Label: "Accident 2 Date", Format: FormatDate},
	{ID: "acc2_nature", Page: 5, X: 20.18, Y: 23.74, Width: 27.78, Height: 2.02, Type: TypeText, Label: "Accident 2 Nature"},
	{ID: "acc2_location", Page: 5, X: 47.96, Y: 23.74, Width: 17.97, Height: 2.02, Type: TypeText, Label: "Accident 2 Location"},
	{ID: "acc2_fatalities", Page: 5, X: 65.93, Y: 23.74, Width: 8.17, Height: 2.02, Type: TypeText, Label: "Accident 2 Fatalities"},
	{ID: "acc2_injuries", Page: 5, X: 74.1, Y: 23.74, Width: 8.17, Height: 2.02, Type: TypeText, Label: "Accident 2 Injuries"},
	{ID: "acc2_hazmat", Page: 5, X: 82.27, Y: 23.74, Width: 8.17, Height: 2.02, Type: TypeText, Label: "Accident 2 Hazmat Spill"},
	{ID: "acc3_date", Page: 5, X: 9.56, Y: 25.76, Width: 10.62, Height: 2.02, Type: TypeDate, Label: "Accident 3 Date", Format: FormatDate},
	{ID: "acc3_nature", Page: 5, X: 20.18, Y: 25.76, Width: 27.78, Height: 2.02, Type: TypeText, Label: "Accident 3 Nature"},
	{ID: "acc3_location", Page: 5, X: 47.96, Y: 25.76, Width: 17.97, Height: 2.02, Type: TypeText, Label: "Accident 3 Location"},
	{ID: "acc3_fatalities", Page: 5, X: 65.93, Y: 25.76, Width: 8.17, Height: 2.02, Type: TypeText, Label: "Accident 3 Fatalities"},
	{ID: "acc3_injuries", Page: 5, X: 74.1, Y: 25.76, Width: 8.17, Height: 2.02, Type: TypeText, Label: "Accident 3 Injuries"},
	{ID: "acc3_hazmat", Page: 5, X: 82.27, Y: 25.76, Width: 8.17, Height: 2.02, Type: TypeText, Label: "Accident 3 Hazmat Spill"},
	{ID: "acc4_date", Page: 5, X: 9.56, Y: 27.78, Width: 10.62, Height: 2.02, Type: TypeDate, Label: "Accident 4 Date", Format: FormatDate},
	{ID: "acc4_nature", Page: 5, X: 20.18, Y: 27.78, Width: 27.78, Height: 2.02, Type: TypeText, Label: "Accident 4 Nature"},
	{ID: "acc4_location", Page: 5, X: 47.96, Y: 27.78, Width: 17.97, Height: 2.02, Type: TypeText, Label: "Accident 4 Location"},
	{ID: "acc4_fatalities", Page: 5, X: 65.93, Y: 27.78, Width: 8.17, Height: 2.02, Type: TypeText, Label: "Accident 4 Fatalities"},
	{ID: "acc4_injuries", Page: 5, X: 74.1, Y: 27.78, Width: 8.17, Height: 2.02, Type: TypeText, Label: "Accident 4 Injuries"},
	{ID: "acc4_hazmat", Page: 5, X: 82.27, Y: 27.78, Width: 8.17, Height: 2.02, Type: TypeText, Label: "Accident 4 Hazmat Spill"},
	{ID: "acc5_date", Page: 5, X: 9.56, Y: 29.8, Width: 10.62, Height: 2.02, Type: TypeDate, Label: "Accident 5 Date", Format: FormatDate},
	{ID: "acc5_nature", Page: 5, X: 20.18, Y: 29.8, Width: 27.78, Height: 2.02, Type: TypeText, Label: "Accident 5 Nature"},
	{ID: "acc5_location", Page: 5, X: 47.96, Y: 29.8, Width: 17.97, Height: 2.02, Type: TypeText, Label: "Accident 5 Location"},
	{ID: "acc5_fatalities", Page: 5, X: 65.93, Y: 29.8, Width: 8.17, Height: 2.02, Type: TypeText, Label: "Accident 5 Fatalities"},
	{ID: "acc5_injuries", Page: 5, X: 74.1, Y: 29.8, Width: 8.17, Height: 2.02, Type: TypeText, Label: "Accident 5 Injuries"},
	{ID: "acc5_hazmat", Page: 5, X: 82.27, Y: 29.8, Width: 8.17, Height: 2.02, Type: TypeText, Label: "Accident 5 Hazmat Spill"},
	{ID: "viol_none", Page: 5, X: 9.56, Y: 36.87, Width: 1.47, Height: 1.14, Type: TypeCheckbox, Label: "No convictions"},
	{ID: "viol1_date", Page: 5, X: 9.56, Y: 39.14, Width: 10.62, Height: 2.02, Type: TypeDate, Label: "Conviction 1 Date", Format: FormatDate},
	{ID: "viol1_location", Page: 5, X: 20.18, Y: 39.14, Width: 19.61, Height: 2.02, Type: TypeText, Label: "Conviction 1 Location"},
	{ID: "viol1_charge", Page: 5, X: 39.79, Y: 39.14, Width: 29.41, Height: 2.02, Type: TypeText, Label: "Conviction 1 Charge"},
	{ID: "viol1_penalty", Page: 5, X: 69.2, Y: 39.14, Width: 21.24, Height: 2.02, Type: TypeText, Label: "Conviction 1 Penalty"},
	{ID: "viol2_date", Page: 5, X: 9.56, Y: 41.16, Width: 10.62, Height: 2.02, Type: TypeDate, Label: "Conviction 2 Date", Format: FormatDate},
	{ID: "viol2_location", Page: 5, X: 20.18, Y: 41.16, Width: 19.61, Height: 2.02, Type: TypeText, Label: "Conviction 2 Location"},
	{ID: "viol2_charge", Page: 5, X: 39.79, Y: 41.16, Width: 29.41, Height: 2.02, Type: TypeText, Label: "Conviction 2 Charge"},
	{ID: "viol2_penalty", Page: 5, X: 69.2, Y: 41.16, Width: 21.24, Height: 2.02, Type: TypeText, Label: "Conviction 2 Penalty"},
	{ID: "viol3_date", Page: 5, X: 9.56, Y: 43.18, Width: 10.62, Height: 2.02, Type: TypeDate, Label: "Conviction 3 Date", Format: FormatDate},
	{ID: "viol3_location", Page: 5, X: 20.18, Y: 43.18, Width: 19.61, Height: 2.02, Type: TypeText, Label: "Conviction 3 Location"},
	{ID: "viol3_charge", Page: 5, X: 39.79, Y: 43.18, Width: 29.41, Height: 2.02, Type: TypeText, Label: "Conviction 3 Charge"},
	{ID: "viol3_penalty", Page: 5, X: 69.2, Y: 43.18, Width: 21.24, Height: 2.02, Type: TypeText, Label: "Conviction 3 Penalty"},
	{ID: "viol4_date", Page: 5, X: 9.56, Y: 45.2, Width: 10.62, Height: 2.02, Type: TypeDate, Label: "Conviction 4 Date", Format: FormatDate},
	{ID: "viol4_location", Page: 5, X: 20.18, Y: 45.2, Width: 19.61, Height: 2.02, Type: TypeText, Label: "Conviction 4 Location"},
	{ID: "viol4_charge", Page: 5, X: 39.79, Y: 45.2, Width: 29.41, Height: 2.02, Type: TypeText, Label: "Conviction 4 Charge"},
	{ID: "viol4_penalty", Page: 5, X: 69.2, Y: 45.2, Width: 21.24, Height: 2.02, Type: TypeText, Label: "Conviction 4 Penalty"},
	{ID: "lic1_state", Page: 6, X: 9.56, Y: 21.14, Width: 8.17, Height: 2.02, Type: TypeText, Label: "License 1 State", Required: true, Format: FormatState},
	{ID: "lic1_number", Page: 6, X: 17.73, Y: 21.14, Width: 21.24, Height: 2.02, Type: TypeText, Label: "License 1 Number", Required: true},
	{ID: "lic1_class", Page: 6, X: 38.97, Y: 21.14, Width: 8.17, Height: 2.02, Type: TypeText, Label: "License 1 Class", Required: true},
	{ID: "lic1_endorsements", Page: 6, X: 47.14, Y: 21.14, Width: 17.97, Height: 2.02, Type: TypeText, Label: "License 1 Endorsements"},
	{ID: "lic1_expiration", Page: 6, X: 65.11, Y: 21.14, Width: 12.25, Height: 2.02, Type: TypeDate, Label: "License 1 Expiration", Required: true, Format: FormatDate},
	{ID: "lic1_restrictions", Page: 6, X: 77.37, Y: 21.14, Width: 13.07, Height: 2.02, Type: TypeText, Label: "License 1 Restrictions"},
	{ID: "lic2_state", Page: 6, X: 9.56, Y: 23.16, Width: 8.17, Height: 2.02, Type: TypeText, Label: "License 2 State", Format: FormatState},
	{ID: "lic2_number", Page: 6, X: 17.73, Y: 23.16, Width: 21.24, Height: 2.02, Type: TypeText, Label: "License 2 Number"},
	{ID: "lic2_class", Page: 6, X: 38.97, Y: 23.16, Width: 8.17, Height: 2.02, Type: TypeText, Label: "License 2 Class"},
	{ID: "lic2_endorsements", Page: 6, X: 47.14, Y: 23.16, Width: 17.97, Height: 2.02, Type: TypeText, Label: "License 2 Endorsements"},
	{ID: "lic2_expiration", Page: 6, X: 65.11, Y: 23.16, Width: 12.25, Height: 2.02, Type: TypeDate, Label: "License 2 Expiration", Format: FormatDate},
	{ID: "lic2_restrictions", Page: 6, X: 77.37, Y: 23.16, Width: 13.07, Height: 2.02, Type: TypeText, Label: "License 2 Restrictions"},
	{ID: "lic3_state", Page: 6, X: 9.56, Y: 25.18, Width: 8.17, Height: 2.02, Type: TypeText, Label: "License 3 State", Format: FormatState},
	{ID: "lic3_number", Page: 6, X: 17.73, Y: 25.18, Width: 21.24, Height: 2.02, Type: TypeText, Label: "License 3 Number"},
	{ID: "lic3_class", Page: 6, X: 38.97, Y: 25.18, Width: 8.17, Height: 2.02, Type: TypeText, Label: "License 3 Class"},
	{ID: "lic3_endorsements", Page: 6, X: 47.14, Y: 25.18, Width: 17.97, Height: 2.02, Type: TypeText, Label: "License 3 Endorsements"},
	{ID: "lic3_expiration", Page: 6, X: 65.11, Y: 25.18, Width: 12.25, Height: 2.02, Type: TypeDate, Label: "License 3 Expiration", Format: FormatDate},
	{ID: "lic3_restrictions", Page: 6, X: 77.37, Y: 25.18, Width: 13.07, Height: 2.02, Type: TypeText, Label: "License 3 Restrictions"},
	{ID: "applicant_cert_printed_name", Page: 9, X: 9.56, Y: 42.35, Width: 60.29, Height: 1.77, Type: TypeText, Label: "Applicant Printed Name", Required: true},
	{ID: "applicant_cert_ssn", Page: 9, X: 70.83, Y: 42.35, Width: 19.61, Height: 1.77, Type: TypeText, Label: "Applicant SSN", Format: FormatSSN},
	{ID: "applicant_cert_signature", Page: 9, X: 9.56, Y: 46.14, Width: 51.76, Height: 2.27, Type: TypeSignature, Label: "Applicant Signature", Required: true},
	{ID: "applicant_cert_date", Page: 9, X: 64.26, Y: 46.39, Width: 26.18, Height: 2.02, Type: TypeDate, Label: "Certification Date", Required: true, Format: FormatDate},
	{ID: "applicant_cert_received_by", Page: 9, X: 9.56, Y: 55.61, Width: 39.71, Height: 1.77, Type: TypeText, Label: "Received By"},
	{ID: "applicant_cert_received_date", Page: 9, X: 74.1, Y: 55.61, Width: 16.34, Height: 1.77, Type: TypeDate, Label: "Date Received", Format: FormatDate},
	{ID: "p11_driver_name", Page: 11, X: 9.56, Y: 21.98, Width: 38.73, Height: 1.77, Type: TypeText, Label: "Driver Name"},
	{ID: "p11_license_number", Page: 11, X: 49.26, Y: 21.98, Width: 19.61, Height: 1.77, Type: TypeText, Label: "License Number"},
	{ID: "p11_license_state", Page: 11, X: 69.85, Y: 21.98, Width: 7.35, Height: 1.77, Type: TypeText, Label: "License State", Format: FormatState},
	{ID: "p11_viol1_date", Page: 11, X: 9.56, Y: 26.28, Width: 13.07, Height: 2.02, Type: TypeDate, Label: "Violation 1 Date", Format: FormatDate},
	{ID: "p11_viol1_offense", Page: 11, X: 22.63, Y: 26.28, Width: 26.96, Height: 2.02, Type: TypeText, Label: "Violation 1 Offense"},
	{ID: "p11_viol1_location", Page: 11, X: 49.59, Y: 26.28, Width: 20.42, Height: 2.02, Type: TypeText, Label: "Violation 1 Location"},
	{ID: "p11_viol1_vehicle", Page: 11, X: 70.02, Y: 26.28, Width: 20.42, Height: 2.02, Type: TypeText, Label: "Violation 1 Vehicle"},
	{ID: "p11_viol2_date", Page: 11, X: 9.56, Y: 28.3, Width: 13.07, Height: 2.02, Type: TypeDate, Label: "Violation 2 Date", Format: FormatDate},
	{ID: "p11_viol2_offense", Page: 11, X: 22.63, Y: 28.3, Width: 26.96, Height: 2.02, Type: TypeText, Label: "Violation 2 Offense"},
	{ID: "p11_viol2_location", Page: 11, X: 49.59, Y: 28.3, Width: 20.42, Height: 2.02, Type: TypeText, Label: "Violation 2 Location"},
	{ID: "p11_viol2_vehicle", Page: 11, X: 70.02, Y: 28.3, Width: 20.42, Height: 2.02, Type: TypeText, Label: "Violation 2 Vehicle"},
	{ID: "p11_viol3_date", Page: 11, X: 9.56, Y: 30.32, Width: 13.07, Height: 2.02, Type: TypeDate, Label: "Violation 3 Date", Format: FormatDate},
	{ID: "p11_viol3_offense", Page: 11, X: 22.63, Y: 30.32, Width: 26.96, Height: 2.02, Type: TypeText, Label: "Violation 3 Offense"},
	{ID: "p11_viol3_location", Page: 11, X: 49.59, Y: 30.32, Width: 20.42, Height: 2.02, Type: TypeText, Label: "Violation 3 Location"},
	{ID: "p11_viol3_vehicle", Page: 11, X: 70.02, Y: 30.32, Width: 20.42, Height: 2.02, Type: TypeText, Label: "Violation 3 Vehicle"},
	{ID: "p11_viol4_date", Page: 11, X: 9.56, Y: 32.34, Width: 13.07, Height: 2.02, Type: TypeDate, Label: "Violation 4 Date", Format: FormatDate},
	{ID: "p11_viol4_offense", Page: 11, X: 22.63, Y: 32.34, Width: 26.96, Height: 2.02, Type: TypeText, Label: "Violation 4 Offense"},
	{ID: "p11_viol4_location", Page: 11, X: 49.59, Y: 32.34, Width: 20.42, Height: 2.02, Type: TypeText, Label: "Violation 4 Location"},
	{ID: "p11_viol4_vehicle", Page: 11, X: 70.02, Y: 32.34, Width: 20.42, Height: 2.02, Type: TypeText, Label: "Violation 4 Vehicle"},
	{ID: "p11_viol5_date", Page: 11, X: 9.56, Y: 34.36, Width: 13.07, Height: 2.02, Type: TypeDate, Label: "Violation 5 Date", Format: FormatDate},
	{ID: "p11_viol5_offense", Page: 11, X: 22.63, Y: 34.36, Width: 26.96, Height: 2.02, Type: TypeText, Label: "Violation 5 Offense"},
	{ID: "p11_viol5_location", Page: 11, X: 49.59, Y: 34.36, Width: 20.42, Height: 2.02, Type: TypeText, Label: "Violation 5 Location"},
	{ID: "p11_viol5_vehicle", Page: 11, X: 70.02, Y: 34.36, Width: 20.42, Height: 2.02, Type: TypeText, Label: "Violation 5 Vehicle"},
	{ID: "hire_applicant_name", Page: 25, X: 9.56, Y: 18.74, Width: 38.07, Height: 1.77, Type: TypeText, Label: "Applicant Name"},
	{ID: "hire_position", Page: 25, X: 48.61, Y: 18.74, Width: 22.88, Height: 1.77, Type: TypeText, Label: "Position"},
	{ID: "hire_terminal", Page: 25, X: 72.47, Y: 18.74, Width: 17.97, Height: 1.77, Type: TypeText, Label: "Terminal"},
}
