package i18n

var zhTable = map[string]string{
	"languageName": "简体中文",
	"appTitle":     "拖拉机记分",

	"north": "北",
	"south": "南",
	"west":  "西",
	"east":  "东",

	"redLevel":  "红方级别",
	"blueLevel": "蓝方级别",
	"round":     "局数",

	"actionTitle":   "{name} 的操作",
	"editName":      "修改名字",
	"editNameTitle": "修改 {name} 的名字",
	"soloScore":     "独赢得分",
	"duoScore":      "对赢得分",
	"soloTitle":     "{name} 独赢",
	"duoTitle":      "{name} 和 {partner} 对赢",
	"scoreValue":    "分数",
	"enterScore":    "输入分数",
	"remarkLabel":   "备注",
	"defaultRemark": "不填则使用默认备注",
	"confirmScore":  "确认记分",
	"save":          "保存",

	"historyTitle":  "记分历史",
	"noHistory":     "暂无记录",
	"clearHistory":  "清空",
	"won":           "赢",
	"note":          "备注",
	"soloBadge":     "独",
	"duoBadge":      "对",
	"tapForHistory": "点击查看历史",
	"settings":      "设置",
	"languageTitle": "选择语言",
	"resetLevels":   "重置级别",
	"startTutorial": "使用教程",
	"lock":          "锁定",
	"unlockHint":    "长按解锁",
	"menu":          "菜单",

	"confirm":             "确定",
	"cancel":              "取消",
	"confirmDelete":       "确定删除这条记录吗？",
	"confirmClearHistory": "确定清空所有记录吗？局数也会重置为 1。",
	"confirmResetLevel":   "确定把双方级别都重置为 2 吗？",

	"tutorialNext":       "下一步",
	"tutorialSkip":       "跳过",
	"tutorialStep1Title": "悬浮按钮",
	"tutorialStep1Desc":  "拖动可以把按钮移到屏幕左边或右边。点击蓝色按钮打开菜单。",
	"tutorialLockTitle":  "锁定",
	"tutorialLockDesc":   "轻点锁定按钮锁住屏幕，防止误触。锁定后长按一秒解锁。10 秒无操作会自动锁定。",
	"tutorialLangTitle":  "切换语言",
	"tutorialLangDesc":   "在这里切换简体中文、English 或繁體中文。",
	"tutorialResetTitle": "重置级别",
	"tutorialResetDesc":  "把红蓝双方的级别都重置为 2。",
	"tutorialStep2Title": "级别",
	"tutorialStep2Desc":  "上下滑动，或点击上沿、下沿来调整红方和蓝方的级别。",
	"tutorialStep3Title": "局数",
	"tutorialStep3Desc":  "上下滑动来调整当前局数。",
	"tutorialStep4Title": "玩家",
	"tutorialStep4Desc":  "点击玩家可以修改名字，或记录独赢、对赢的分数。",
	"tutorialStep5Title": "历史",
	"tutorialStep5Desc":  "中间显示每位玩家的备注，点击查看和删除历史记录。",
}

var enTable = map[string]string{
	"languageName": "English",
	"appTitle":     "Tractor Score",

	"north": "North",
	"south": "South",
	"west":  "West",
	"east":  "East",

	"redLevel":  "Red Level",
	"blueLevel": "Blue Level",
	"round":     "Round",

	"actionTitle":   "{name}",
	"editName":      "Rename",
	"editNameTitle": "Rename {name}",
	"soloScore":     "Solo win",
	"duoScore":      "Duo win",
	"soloTitle":     "{name} wins solo",
	"duoTitle":      "{name} and {partner} win",
	"scoreValue":    "Score",
	"enterScore":    "Enter score",
	"remarkLabel":   "Remark",
	"defaultRemark": "Leave empty for the default remark",
	"confirmScore":  "Add score",
	"save":          "Save",

	"historyTitle":  "History",
	"noHistory":     "No records yet",
	"clearHistory":  "Clear",
	"won":           "won",
	"note":          "Note",
	"soloBadge":     "Solo",
	"duoBadge":      "Duo",
	"tapForHistory": "Tap for history",
	"settings":      "Settings",
	"languageTitle": "Language",
	"resetLevels":   "Reset levels",
	"startTutorial": "Tutorial",
	"lock":          "Lock",
	"unlockHint":    "Hold to unlock",
	"menu":          "Menu",

	"confirm":             "OK",
	"cancel":              "Cancel",
	"confirmDelete":       "Delete this record?",
	"confirmClearHistory": "Clear all records? The round is reset to 1 as well.",
	"confirmResetLevel":   "Reset both levels to 2?",

	"tutorialNext":       "Next",
	"tutorialSkip":       "Skip",
	"tutorialStep1Title": "Floating button",
	"tutorialStep1Desc":  "Drag it to the left or right edge of the screen. Tap the blue button to open the menu.",
	"tutorialLockTitle":  "Lock",
	"tutorialLockDesc":   "Tap the lock to block accidental touches. Hold it for one second to unlock. The screen locks itself after 10 seconds without activity.",
	"tutorialLangTitle":  "Language",
	"tutorialLangDesc":   "Switch between 简体中文, English and 繁體中文 here.",
	"tutorialResetTitle": "Reset levels",
	"tutorialResetDesc":  "Resets the red and blue levels to 2.",
	"tutorialStep2Title": "Levels",
	"tutorialStep2Desc":  "Swipe up or down, or tap the top or bottom edge, to change each team's level.",
	"tutorialStep3Title": "Round",
	"tutorialStep3Desc":  "Swipe up or down to change the round number.",
	"tutorialStep4Title": "Players",
	"tutorialStep4Desc":  "Tap a player to rename them or to record a solo or duo win.",
	"tutorialStep5Title": "History",
	"tutorialStep5Desc":  "The center shows each player's remarks. Tap it to review and delete records.",
}

var twTable = map[string]string{
	"languageName": "繁體中文",
	"appTitle":     "拖拉機記分",

	"north": "北",
	"south": "南",
	"west":  "西",
	"east":  "東",

	"redLevel":  "紅方級別",
	"blueLevel": "藍方級別",
	"round":     "局數",

	"actionTitle":   "{name} 的操作",
	"editName":      "修改名字",
	"editNameTitle": "修改 {name} 的名字",
	"soloScore":     "獨贏得分",
	"duoScore":      "對贏得分",
	"soloTitle":     "{name} 獨贏",
	"duoTitle":      "{name} 和 {partner} 對贏",
	"scoreValue":    "分數",
	"enterScore":    "輸入分數",
	"remarkLabel":   "備註",
	"defaultRemark": "不填則使用預設備註",
	"confirmScore":  "確認記分",
	"save":          "儲存",

	"historyTitle":  "記分歷史",
	"noHistory":     "暫無紀錄",
	"clearHistory":  "清空",
	"won":           "贏",
	"note":          "備註",
	"soloBadge":     "獨",
	"duoBadge":      "對",
	"tapForHistory": "點擊查看歷史",
	"settings":      "設定",
	"languageTitle": "選擇語言",
	"resetLevels":   "重置級別",
	"startTutorial": "使用教學",
	"lock":          "鎖定",
	"unlockHint":    "長按解鎖",
	"menu":          "選單",

	"confirm":             "確定",
	"cancel":              "取消",
	"confirmDelete":       "確定刪除這筆紀錄嗎？",
	"confirmClearHistory": "確定清空所有紀錄嗎？局數也會重置為 1。",
	"confirmResetLevel":   "確定把雙方級別都重置為 2 嗎？",

	"tutorialNext":       "下一步",
	"tutorialSkip":       "跳過",
	"tutorialStep1Title": "懸浮按鈕",
	"tutorialStep1Desc":  "拖動可以把按鈕移到螢幕左邊或右邊。點擊藍色按鈕打開選單。",
	"tutorialLockTitle":  "鎖定",
	"tutorialLockDesc":   "輕點鎖定按鈕鎖住螢幕，防止誤觸。鎖定後長按一秒解鎖。10 秒無操作會自動鎖定。",
	"tutorialLangTitle":  "切換語言",
	"tutorialLangDesc":   "在這裡切換简体中文、English 或繁體中文。",
	"tutorialResetTitle": "重置級別",
	"tutorialResetDesc":  "把紅藍雙方的級別都重置為 2。",
	"tutorialStep2Title": "級別",
	"tutorialStep2Desc":  "上下滑動，或點擊上緣、下緣來調整紅方和藍方的級別。",
	"tutorialStep3Title": "局數",
	"tutorialStep3Desc":  "上下滑動來調整目前局數。",
	"tutorialStep4Title": "玩家",
	"tutorialStep4Desc":  "點擊玩家可以修改名字，或記錄獨贏、對贏的分數。",
	"tutorialStep5Title": "歷史",
	"tutorialStep5Desc":  "中間顯示每位玩家的備註，點擊查看和刪除歷史紀錄。",
}
