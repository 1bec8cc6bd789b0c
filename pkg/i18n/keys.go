package i18n

// Key names a localized UI string. The key set is closed: every Key
// constant below has an entry in each locale table, and templates may only
// reference these names.
type Key string

const (
	KeyAppTitle             Key = "appTitle"
	KeyCompanies            Key = "companies"
	KeyRisks                Key = "risks"
	KeyControls             Key = "controls"
	KeyAddCompany           Key = "addCompany"
	KeyAddRisk              Key = "addRisk"
	KeyAddControl           Key = "addControl"
	KeyName                 Key = "name"
	KeyDescription          Key = "description"
	KeyCreated              Key = "created"
	KeyBack                 Key = "back"
	KeyCancel               Key = "cancel"
	KeyCreate               Key = "create"
	KeyUpdate               Key = "update"
	KeyEdit                 Key = "edit"
	KeyDelete               Key = "delete"
	KeyLevel                Key = "level"
	KeyFrequency            Key = "frequency"
	KeyCompany              Key = "company"
	KeyAssociatedRisk       Key = "associatedRisk"
	KeyAssociatedControls   Key = "associatedControls"
	KeySelectRisk           Key = "selectRisk"
	KeySelectCompany        Key = "selectCompany"
	KeyLow                  Key = "low"
	KeyMedium               Key = "medium"
	KeyHigh                 Key = "high"
	KeyDaily                Key = "daily"
	KeyWeekly               Key = "weekly"
	KeyMonthly              Key = "monthly"
	KeyQuarterly            Key = "quarterly"
	KeyYearly               Key = "yearly"
	KeyCreateNewRisk        Key = "createNewRisk"
	KeyCreateNewControl     Key = "createNewControl"
	KeyExistingRisks        Key = "existingRisks"
	KeyExistingControls     Key = "existingControls"
	KeyImpact               Key = "impact"
	KeyRiskAndControlMatrix Key = "riskAndControlMatrix"
	KeyAssignRiskAndControl Key = "assignRiskAndControl"
	KeyRisk                 Key = "risk"
	KeyControl              Key = "control"
	KeyActions              Key = "actions"
	KeyNoControlsAssigned   Key = "noControlsAssigned"
	KeyNoCompanies          Key = "noCompanies"
	KeyNoRisks              Key = "noRisks"
	KeyNoControls           Key = "noControls"
)

// AllKeys returns every declared key
func AllKeys() []Key {
	return []Key{
		KeyAppTitle,
		KeyCompanies,
		KeyRisks,
		KeyControls,
		KeyAddCompany,
		KeyAddRisk,
		KeyAddControl,
		KeyName,
		KeyDescription,
		KeyCreated,
		KeyBack,
		KeyCancel,
		KeyCreate,
		KeyUpdate,
		KeyEdit,
		KeyDelete,
		KeyLevel,
		KeyFrequency,
		KeyCompany,
		KeyAssociatedRisk,
		KeyAssociatedControls,
		KeySelectRisk,
		KeySelectCompany,
		KeyLow,
		KeyMedium,
		KeyHigh,
		KeyDaily,
		KeyWeekly,
		KeyMonthly,
		KeyQuarterly,
		KeyYearly,
		KeyCreateNewRisk,
		KeyCreateNewControl,
		KeyExistingRisks,
		KeyExistingControls,
		KeyImpact,
		KeyRiskAndControlMatrix,
		KeyAssignRiskAndControl,
		KeyRisk,
		KeyControl,
		KeyActions,
		KeyNoControlsAssigned,
		KeyNoCompanies,
		KeyNoRisks,
		KeyNoControls,
	}
}
