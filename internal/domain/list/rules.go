package list

import "github.com/jsamuelsen11/listsync/internal/domain"

var (
	requiredString = domain.Rule{Required: true, Type: domain.TypeString}
	nullableString = domain.Rule{Type: domain.TypeString}
	nullableEmail  = domain.Rule{Type: domain.TypeString, Format: "email"}
)

// Rules returns the validation rules for a list payload.
func Rules() domain.Rules {
	return domain.Rules{
		FieldName:               requiredString,
		FieldPermissionReminder: requiredString,
		FieldEmailTypeOption:    {Required: true, Type: domain.TypeBoolean},

		FieldContact:        {Required: true, Type: domain.TypeObject},
		"contact.company":   requiredString,
		"contact.address1":  requiredString,
		"contact.address2":  nullableString,
		"contact.city":      requiredString,
		"contact.state":     requiredString,
		"contact.zip":       requiredString,
		"contact.country":   {Required: true, Type: domain.TypeString, Format: "len=2"},
		"contact.phone":     nullableString,

		FieldCampaignDefaults:         {Required: true, Type: domain.TypeObject},
		"campaign_defaults.from_name":  requiredString,
		"campaign_defaults.from_email": {Required: true, Type: domain.TypeString, Format: "email"},
		"campaign_defaults.subject":    requiredString,
		"campaign_defaults.language":   requiredString,

		FieldNotifyOnSubscribe:   nullableEmail,
		FieldNotifyOnUnsubscribe: nullableEmail,
		FieldUseArchiveBar:       {Type: domain.TypeBoolean},
		FieldVisibility:          {Type: domain.TypeString, Enum: []string{"pub", "prv"}},
	}
}
