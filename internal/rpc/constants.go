package rpc

// Method names of the call contract
const (
	MethodItemsList            = "items.list"
	MethodItemsSave            = "items.save"
	MethodItemsDelete          = "items.delete"
	MethodInventoryList        = "inventory.list"
	MethodInventorySetQuantity = "inventory.setQuantity"
	MethodInventoryValue       = "inventory.value"
	MethodRecipesList          = "recipes.list"
	MethodRecipesSave          = "recipes.save"
	MethodRecipesDelete        = "recipes.delete"
	MethodCraftCheck           = "craft.check"
	MethodCraftResolve         = "craft.resolve"
	MethodAppVersion           = "app.version"
)

// legacyAliases maps the desktop client's channel names onto methods
var legacyAliases = map[string]string{
	"items:get-all":     MethodItemsList,
	"items:save":        MethodItemsSave,
	"items:delete":      MethodItemsDelete,
	"inventory:get-all": MethodInventoryList,
	"inventory:update":  MethodInventorySetQuantity,
	"crafting:get-all":  MethodRecipesList,
	"crafting:save":     MethodRecipesSave,
	"crafting:delete":   MethodRecipesDelete,
	"app:get-version":   MethodAppVersion,
}

// Error messages
const (
	ErrMsgUnknownMethod  = "unknown method"
	ErrMsgInvalidParams  = "invalid params"
	ErrMsgMissingParams  = "params are required"
	ErrMsgInvalidRequest = "Invalid request body"
)

// Log messages
const (
	LogMsgCallFailed   = "RPC call failed"
	LogMsgCallRejected = "RPC call rejected"
)

// maxBodyBytes bounds the size of one call
const maxBodyBytes = 1 << 20
