package xlsx

// Data sheets of the provider template.
const (
	SheetRecipeList  = "食谱列表Recipe List"
	SheetIngredients = "食材Ingredients List"
	SheetSteps       = "食谱步骤Cooking Steps"
)

// Identity columns repeated on all three data sheets.
const (
	headerRecipeNo   = "*食谱序号\nRecipe NO"
	headerLanguage   = "语言\nLanguage"
	headerRecipeType = "*食谱类型\nRecipe Type"
	headerRecipeName = "*食谱名称\nRecipe Name"
)

// Recipe list sheet columns.
const (
	headerCategory      = "*食谱分类（单选）\nRecipe Category(Multiple Choice)"
	headerServings      = "*份量\nServings"
	headerPrepHours     = "*准备时间/小时\nPrepare Time/Hour"
	headerPrepMinutes   = "*准备时间/分\nPrepare Time/Minutes"
	headerCookHours     = "*烹饪时间/小时\nCooking Time/Hour"
	headerCookMinutes   = "*烹饪时间/分\nCooking Time/Minutes"
	headerRestHours     = "*休息时间/小时\nRest Time/Hour"
	headerRestMinutes   = "*休息时间/分\nRest Time/Minutes"
	headerDifficulty    = "*难易度\nDifficulty Level"
	headerAccessoryNo   = "*配件序号（可多选）\nAccessory No/ID（Choose multiply ）"
	headerAccessoryName = "所用配件名称\nUsed Accessories"
	headerOverview      = "食谱制作总步骤（做法介绍）\nOverview For Cooking Steps"
)

// Ingredients sheet columns.
const (
	headerIngredientNo   = "*食材序号\nIngredients No"
	headerIngredientQty  = "*食材/数量\nIngredients/qty"
	headerIngredientUnit = "*食材/单位\nIngredients/Unit"
	headerIngredientName = "*食材/名称\nIngredient/Name"
)

// Cooking steps sheet columns.
const (
	headerStepNo          = "*步骤序号\nCooking Step NO"
	headerStepMode        = "*步骤/工作模式\nWorking Mode"
	headerStepDescription = "步骤/文字描述\nDescription"
	headerStepTemperature = "步骤/加热温度\nWorking Temperature"
	headerStepDirection   = "步骤/旋转方向\nRotation Direction\n（R/L)"
	headerStepSpeed       = "步骤/旋转速度\nRotation Speed\n（0-12）"
	headerStepMinutes     = "步骤/分\nWorking Time/Mins"
	headerStepSeconds     = "步骤/秒\nWorking Time/ Seconds"
)
