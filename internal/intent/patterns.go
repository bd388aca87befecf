package intent

// DefaultRules returns the built-in bilingual rule table.
//
// Every category carries two logically separate sets: boundary-sensitive
// English rules (word/prefix) and boundary-free Chinese rules (phrase).
// Weights reflect specificity: an explicit imperative like "take a
// screenshot" is near-decisive, while a lone generic verb barely counts.
func DefaultRules() RuleTable {
	return RuleTable{
		CategoryHelpRequest: {
			word(`help|assist|support|guide`, 0.5),
			word(`show me|how to|can you help|could you help`, 0.6),
			word(`need help|stuck|need assistance|need support`, 0.6),
			word(`teach me|guide me`, 0.5),
			phrase(`帮助|协助|支持|指导`, 0.5),
			phrase(`需要帮助|困难|有困难`, 0.6),
			phrase(`帮我|教我`, 0.5),
		},
		CategoryTaskExecution: {
			word(`(execute|perform|carry out)\b.*\b(task|action|job)`, 0.7),
			word(`do|run|start|launch`, 0.4),
			word(`(open|close)\b.*\b(browser|application|app|program|window)`, 0.7),
			prefix(`(please )?(do|execute|run)\b`, 0.6),
			phrase(`完成|执行|运行|启动|打开`, 0.5),
			phrase(`^(完成|执行)`, 0.6),
		},
		CategoryInformationQuery: {
			prefix(`(what|when|where|who|why|how|which)\b`, 0.6),
			word(`tell me|explain|describe|define`, 0.6),
			phrase(`^(什么|为什么|如何|哪里|为何|怎么)`, 0.6),
			phrase(`告诉我|解释|说明|定义`, 0.6),
			phrase(`查询|询问|了解|知道`, 0.5),
		},
		CategoryAutomationRequest: {
			prefix(`automate\b`, 0.9),
			word(`automate|automatic|automatically`, 0.7),
			word(`schedule|repeat|batch|recurring`, 0.6),
			word(`(set up|setup)\b.*\b(automation|automatic)`, 0.8),
			word(`automate this|make it automatic`, 0.8),
			word(`every|daily|weekly`, 0.5),
			phrase(`^自动化`, 0.9),
			phrase(`帮我自动|自动执行|自动完成`, 0.9),
			phrase(`自动化.*任务|自动.*处理`, 0.8),
			phrase(`批处理|批量处理|自动运行`, 0.7),
			phrase(`自动化|自动|定时|批量`, 0.7),
			phrase(`每天|每周|每|重复|循环|定期`, 0.5),
		},
		CategoryFileOperation: {
			word(`(file|folder|directory)\b.*\b(save|load|delete|move|copy|rename)`, 0.7),
			word(`(create|make|new)\b.*\b(file|folder)`, 0.7),
			phrase(`文件|文件夹|目录`, 0.5),
			phrase(`保存|删除|移动|复制|重命名|创建`, 0.5),
		},
		CategorySearch: {
			prefix(`(search|find|lookup|query)\b`, 0.7),
			word(`search for|find me|lookup`, 0.7),
			phrase(`search.{1,20}(tutorial|guide|info|how to)`, 0.8),
			phrase(`^(搜索|查询|搜|找)`, 0.8),
			phrase(`(搜索|查找|检索).{0,10}(教程|资料|信息|内容)`, 0.8),
			phrase(`(搜索|搜|查找).{1,20}(教程|指南|方法)`, 0.8),
		},
		CategoryMemoryOperation: {
			prefix(`remember\b`, 0.9),
			word(`save to memory|store this`, 0.8),
			word(`memorize|keep in mind`, 0.8),
			word(`recall|retrieve`, 0.7),
			word(`do you remember`, 0.8),
			phrase(`^(记住|记录)`, 0.9),
			phrase(`记下来|记一下`, 0.8),
			phrase(`(记住|记录|保存|储存).{0,6}(这个|这件事|此事|信息)`, 0.9),
			phrase(`别忘了|不要忘记`, 0.8),
			phrase(`想起|回忆`, 0.7),
			phrase(`你记得|还记得`, 0.8),
		},
		CategoryScreenshotRequest: {
			prefix(`screenshot|capture`, 0.95),
			word(`take a screenshot|capture screen`, 0.9),
			word(`capture this|save screen`, 0.8),
			word(`screen capture|print screen`, 0.8),
			phrase(`截图|截屏|抓图|屏幕截图`, 0.95),
			phrase(`保存屏幕`, 0.8),
		},
		CategoryOpenURL: {
			phrase(`https?://\S+`, 0.95),
			word(`(open|go to|visit|navigate to)\b.*\b(https?|www)`, 0.9),
			prefix(`open\s*(www\.|http)`, 0.9),
			phrase(`(\.com|\.org|\.net|\.cn|\.io)\b`, 0.6),
			phrase(`(打开|访问|进入|浏览).{0,10}(网址|网站|链接)`, 0.8),
			phrase(`^打开\s*(www\.|http)`, 0.9),
		},
		CategoryOpenFile: {
			word(`(open|edit|view)\b.*\b(file|document)`, 0.8),
			word(`(open|edit|view)\b.*\.(py|txt|doc|docx|pdf|jpg|png|xlsx|json|xml|cpp|java|js|html|css|md|go)`, 0.9),
			phrase(`"[^"]*\.[a-z0-9]{1,5}"`, 0.9),
			phrase(`'[^']*\.[a-z0-9]{1,5}'`, 0.9),
			phrase(`(打开|编辑|查看).{0,10}(文件|文档)`, 0.8),
			phrase(`打开.{0,30}\.(py|txt|doc|docx|pdf|jpg|png|xlsx|json|xml|cpp|java|js|html|css|md|go)`, 0.9),
		},
		CategoryCodeAssistance: {
			word(`(code|program|script)\b.*\b(debug|fix|error|bug)`, 0.8),
			word(`(debug|fix)\b.*\b(code|program|script|function|error|bug)`, 0.8),
			prefix(`(debug|fix)\b`, 0.6),
			word(`function|class|variable|method|algorithm`, 0.6),
			word(`(compile|syntax|runtime)\b.*\b(error|issue)`, 0.7),
			phrase(`代码|程序|脚本`, 0.5),
			phrase(`调试|修复|错误|函数|变量`, 0.6),
		},
		CategoryWritingAssistance: {
			word(`(write|draft|compose)\b.*\b(document|article|essay|email)`, 0.7),
			word(`edit|proofread|review|revise`, 0.6),
			word(`grammar|spelling|punctuation`, 0.6),
			phrase(`写作|撰写|编写`, 0.6),
			phrase(`编辑|修改|校对|语法`, 0.6),
		},
		CategoryWebSearch: {
			word(`google|bing|search engine`, 0.7),
			word(`find online|look up online|search the web`, 0.7),
			word(`look up|lookup`, 0.6),
			word(`browse|surf`, 0.4),
			phrase(`在线搜索|网上查找|上网搜`, 0.7),
		},
		CategorySystemCommand: {
			word(`(shutdown|restart|reboot)\b.*\b(computer|system|pc)`, 0.8),
			word(`(close|quit|exit|kill)\b.*\b(application|app|program)`, 0.7),
			word(`(minimize|maximize|restore)\b.*\b(window)`, 0.7),
			phrase(`(关闭|退出|结束).{0,6}(程序|应用|窗口)`, 0.7),
			phrase(`重启|关机|最小化|最大化`, 0.6),
		},
		CategoryCasualChat: {
			prefix(`(hi|hello|hey)\b`, 0.8),
			prefix(`how are you|how's it going|what's up`, 0.8),
			word(`(nice|good|great|cool|awesome)\b.*\b(weather|day)`, 0.7),
			prefix(`thanks|thank you`, 0.7),
			prefix(`bye|goodbye|see you`, 0.7),
			word(`ok|okay|fine|sure|alright`, 0.4),
			phrase(`^(你好|嗨|哈喽)`, 0.8),
			phrase(`^(你好吗|怎么样)`, 0.8),
			phrase(`(不错|很好|棒).{0,4}天气`, 0.7),
			phrase(`^(谢谢|感谢)`, 0.7),
			phrase(`^(再见|拜拜)`, 0.7),
			phrase(`好的|行|可以`, 0.4),
		},
	}
}
