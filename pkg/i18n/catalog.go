package i18n

import "github.com/secmon-lab/riskmatrix/pkg/domain/types"

var english = map[Key]string{
	KeyAppTitle:             "Risk Management",
	KeyCompanies:            "Companies",
	KeyRisks:                "Risks",
	KeyControls:             "Controls",
	KeyAddCompany:           "Add Company",
	KeyAddRisk:              "Add Risk",
	KeyAddControl:           "Add Control",
	KeyName:                 "Name",
	KeyDescription:          "Description",
	KeyCreated:              "Created",
	KeyBack:                 "Back",
	KeyCancel:               "Cancel",
	KeyCreate:               "Create",
	KeyUpdate:               "Update",
	KeyEdit:                 "Edit",
	KeyDelete:               "Delete",
	KeyLevel:                "Level",
	KeyFrequency:            "Frequency",
	KeyCompany:              "Company",
	KeyAssociatedRisk:       "Associated Risk",
	KeyAssociatedControls:   "Associated Controls",
	KeySelectRisk:           "Select Risk",
	KeySelectCompany:        "Select Company",
	KeyLow:                  "Low",
	KeyMedium:               "Medium",
	KeyHigh:                 "High",
	KeyDaily:                "Daily",
	KeyWeekly:               "Weekly",
	KeyMonthly:              "Monthly",
	KeyQuarterly:            "Quarterly",
	KeyYearly:               "Yearly",
	KeyCreateNewRisk:        "Create New Risk",
	KeyCreateNewControl:     "Create New Control",
	KeyExistingRisks:        "Existing Risks",
	KeyExistingControls:     "Existing Controls",
	KeyImpact:               "Impact",
	KeyRiskAndControlMatrix: "Risk and Control Matrix",
	KeyAssignRiskAndControl: "Assign Risk and Control",
	KeyRisk:                 "Risk",
	KeyControl:              "Control",
	KeyActions:              "Actions",
	KeyNoControlsAssigned:   "No controls assigned",
	KeyNoCompanies:          "No companies yet",
	KeyNoRisks:              "No risks yet",
	KeyNoControls:           "No controls yet",
}

var spanish = map[Key]string{
	KeyAppTitle:             "Gestión de Riesgos",
	KeyCompanies:            "Empresas",
	KeyRisks:                "Riesgos",
	KeyControls:             "Controles",
	KeyAddCompany:           "Agregar Empresa",
	KeyAddRisk:              "Agregar Riesgo",
	KeyAddControl:           "Agregar Control",
	KeyName:                 "Nombre",
	KeyDescription:          "Descripción",
	KeyCreated:              "Creado",
	KeyBack:                 "Volver",
	KeyCancel:               "Cancelar",
	KeyCreate:               "Crear",
	KeyUpdate:               "Actualizar",
	KeyEdit:                 "Editar",
	KeyDelete:               "Eliminar",
	KeyLevel:                "Nivel",
	KeyFrequency:            "Frecuencia",
	KeyCompany:              "Empresa",
	KeyAssociatedRisk:       "Riesgo Asociado",
	KeyAssociatedControls:   "Controles Asociados",
	KeySelectRisk:           "Seleccionar Riesgo",
	KeySelectCompany:        "Seleccionar Empresa",
	KeyLow:                  "Bajo",
	KeyMedium:               "Medio",
	KeyHigh:                 "Alto",
	KeyDaily:                "Diario",
	KeyWeekly:               "Semanal",
	KeyMonthly:              "Mensual",
	KeyQuarterly:            "Trimestral",
	KeyYearly:               "Anual",
	KeyCreateNewRisk:        "Crear Nuevo Riesgo",
	KeyCreateNewControl:     "Crear Nuevo Control",
	KeyExistingRisks:        "Riesgos Existentes",
	KeyExistingControls:     "Controles Existentes",
	KeyImpact:               "Impacto",
	KeyRiskAndControlMatrix: "Matriz de Riesgos y Controles",
	KeyAssignRiskAndControl: "Asignar Riesgo y Control",
	KeyRisk:                 "Riesgo",
	KeyControl:              "Control",
	KeyActions:              "Acciones",
	KeyNoControlsAssigned:   "Sin controles asignados",
	KeyNoCompanies:          "Aún no hay empresas",
	KeyNoRisks:              "Aún no hay riesgos",
	KeyNoControls:           "Aún no hay controles",
}

var catalog = map[types.Language]map[Key]string{
	types.LanguageEnglish: english,
	types.LanguageSpanish: spanish,
}
