package newsprovider

import "newsboard/internal/domain/entity"

func sampleItems() []entity.NewsItem {
	return []entity.NewsItem{
		{
			ID:       "1",
			Title:    "科技前沿：人工智能在医疗领域的突破性应用",
			Source:   "科技日报",
			Time:     "2024-01-15 10:30",
			Image:    "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=800",
			URL:      "/news/1",
			Category: "科技",
			Abstract: "最新研究显示，AI技术在疾病诊断和治疗方案制定方面取得重大进展...",
		},
		{
			ID:       "2",
			Title:    "经济观察：2024年全球经济展望与投资机会",
			Source:   "财经周刊",
			Time:     "2024-01-15 09:15",
			Image:    "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=800",
			URL:      "/news/2",
			Category: "财经",
			Abstract: "专家分析认为，新兴市场将迎来新的增长机遇...",
		},
		{
			ID:       "3",
			Title:    "体育快讯：国际足球赛事精彩回顾",
			Source:   "体育时报",
			Time:     "2024-01-15 08:45",
			Image:    "https://images.unsplash.com/photo-1574629810360-7efbbe195018?w=800",
			URL:      "/news/3",
			Category: "体育",
			Abstract: "昨晚进行的国际足球比赛中，多支强队展现出色表现...",
		},
		{
			ID:       "4",
			Title:    "文化视角：传统文化在现代社会的传承与创新",
			Source:   "文化周刊",
			Time:     "2024-01-14 20:20",
			Image:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800",
			URL:      "/news/4",
			Category: "文化",
			Abstract: "探讨如何在新时代背景下传承和发扬优秀传统文化...",
		},
		{
			ID:       "5",
			Title:    "健康生活：冬季养生小贴士",
			Source:   "健康时报",
			Time:     "2024-01-14 18:30",
			Image:    "https://images.unsplash.com/photo-1490645935967-10de6ba17061?w=800",
			URL:      "/news/5",
			Category: "健康",
			Abstract: "专家建议，冬季应注意保暖和营养均衡...",
		},
		{
			ID:       "6",
			Title:    "教育资讯：在线教育平台的新发展趋势",
			Source:   "教育观察",
			Time:     "2024-01-14 16:15",
			Image:    "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=800",
			URL:      "/news/6",
			Category: "教育",
			Abstract: "随着技术发展，在线教育正在改变传统学习方式...",
		},
	}
}

func sampleDetails() []entity.NewsDetail {
	return []entity.NewsDetail{
		{
			NewsItem: entity.NewsItem{
				ID:       "1",
				Title:    "科技前沿：人工智能在医疗领域的突破性应用",
				Source:   "科技日报",
				Time:     "2024-01-15 10:30",
				Image:    "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=1200",
				URL:      "/news/1",
				Category: "科技",
				Abstract: "最新研究显示，AI技术在疾病诊断和治疗方案制定方面取得重大进展...",
			},
			Content: `<p>人工智能技术在医疗健康领域的应用正在快速发展，为传统医疗模式带来革命性变化。</p>
<h2>诊断精度的提升</h2>
<p>最新的AI诊断系统在多种疾病的识别准确率上已经超过了经验丰富的医生。通过深度学习算法，系统能够分析医学影像，识别早期病变，为患者争取宝贵的治疗时间。</p>
<h2>个性化治疗方案</h2>
<p>基于大数据和机器学习，AI系统能够根据患者的基因信息、病史和实时生理数据，制定个性化的治疗方案，提高治疗效果，减少副作用。</p>
<h2>药物研发加速</h2>
<p>AI技术在药物研发中的应用大大缩短了新药从发现到上市的时间。通过模拟分子结构和预测药物相互作用，AI帮助科研人员更快地找到有效的药物候选。</p>
<h2>远程医疗支持</h2>
<p>结合5G和AI技术，远程医疗变得更加智能和高效。患者可以通过智能设备进行初步诊断，AI系统提供专业建议，让优质医疗资源覆盖更广泛的人群。</p>
<p>专家表示，虽然AI技术在医疗领域展现出巨大潜力，但人机协作仍然是未来医疗发展的主要方向。医生的专业判断和人文关怀是AI无法替代的。</p>`,
			Tags:     []string{"人工智能", "医疗健康", "科技创新"},
			Views:    12580,
			Comments: 342,
		},
		{
			NewsItem: entity.NewsItem{
				ID:       "2",
				Title:    "经济观察：2024年全球经济展望与投资机会",
				Source:   "财经周刊",
				Time:     "2024-01-15 09:15",
				Image:    "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=1200",
				URL:      "/news/2",
				Category: "财经",
				Abstract: "专家分析认为，新兴市场将迎来新的增长机遇...",
			},
			Content: `<p>2024年全球经济在多重因素影响下呈现出复杂多变的态势，投资者需要密切关注市场动态，把握投资机会。</p>
<h2>全球经济增长预期</h2>
<p>国际货币基金组织最新预测显示，2024年全球经济增长将保持在3%左右。虽然增速有所放缓，但整体仍保持稳定增长态势。</p>
<h2>新兴市场投资机会</h2>
<p>随着全球经济格局的变化，新兴市场国家展现出强劲的增长潜力。特别是在科技、新能源、消费升级等领域，投资机会丰富。</p>
<h2>风险与挑战</h2>
<p>地缘政治风险、通胀压力、债务问题等仍然是需要关注的重要因素。投资者需要做好风险管理，保持投资组合的多样性。</p>
<h2>投资建议</h2>
<p>专家建议，投资者应该关注长期价值，选择具有核心竞争力的优质资产，同时保持足够的流动性以应对市场波动。</p>`,
			Tags:     []string{"经济", "投资", "全球市场"},
			Views:    8920,
			Comments: 156,
		},
	}
}
